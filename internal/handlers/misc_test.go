package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthAndRoot(t *testing.T) {
	t.Parallel()
	r := newTestRouter(newFakeStore(), &fakeGateway{})

	w := doJSON(t, r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeMap(t, w)["status"])

	w = doJSON(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeMap(t, w)
	assert.Equal(t, "healthy", got["status"])
	assert.NotEmpty(t, got["timestamp"])
}

func TestAuthMe(t *testing.T) {
	t.Parallel()
	r := newTestRouter(newFakeStore(), &fakeGateway{})

	w := doJSON(t, r, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/auth/me", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeMap(t, w)
	assert.Equal(t, userUID, got["uid"])
	assert.Equal(t, "user@example.com", got["email"])
	assert.Equal(t, false, got["isAdmin"])

	w = doJSON(t, r, http.MethodGet, "/auth/me", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeMap(t, w)["isAdmin"])
}

func TestProtected(t *testing.T) {
	t.Parallel()
	r := newTestRouter(newFakeStore(), &fakeGateway{})

	w := doJSON(t, r, http.MethodGet, "/protected", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeMap(t, w)
	assert.Equal(t, "You are authenticated!", got["message"])
	assert.Equal(t, userUID, got["uid"])
}

func TestImageKitAuthIsPublic(t *testing.T) {
	t.Parallel()
	r := newTestRouter(newFakeStore(), &fakeGateway{})

	w := doJSON(t, r, http.MethodGet, "/imagekit-auth", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeMap(t, w)
	assert.Equal(t, "tok-1", got["token"])
	assert.Equal(t, "sig-1", got["signature"])
	assert.Equal(t, 1893456000.0, got["expire"])
}
