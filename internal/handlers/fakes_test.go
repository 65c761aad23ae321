package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"reflect"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"artiflora_back_end/internal/auth"
	"artiflora_back_end/internal/handlers"
	"artiflora_back_end/internal/media"
	"artiflora_back_end/internal/models"
	"artiflora_back_end/internal/routes"
)

// Tokens et identités utilisés par toute la suite.
const (
	adminToken = "admin-token"
	userToken  = "user-token"
	otherToken = "other-token"

	adminUID = "admin-uid"
	userUID  = "user-uid"
	otherUID = "other-uid"
)

type fakeVerifier struct{}

func (fakeVerifier) Verify(_ context.Context, rawToken string) (*auth.Identity, error) {
	switch rawToken {
	case adminToken:
		return &auth.Identity{UID: adminUID, Email: "admin@example.com"}, nil
	case userToken:
		return &auth.Identity{UID: userUID, Email: "user@example.com"}, nil
	case otherToken:
		return &auth.Identity{UID: otherUID, Email: "other@example.com"}, nil
	}
	return nil, errors.New("token invalide ou expiré")
}

// fakeStore reproduit en mémoire le contrat du store Mongo : ids hexa
// générés, zéro-modifié quand rien ne change, tri created_at décroissant.
type fakeStore struct {
	products map[string]models.Product
	orders   map[string]models.Order
	admins   map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]models.Product),
		orders:   make(map[string]models.Order),
		admins:   map[string]bool{adminUID: true},
	}
}

func (f *fakeStore) CreateProduct(_ context.Context, p models.Product) (string, error) {
	p.ID = primitive.NewObjectID()
	f.products[p.ID.Hex()] = p
	return p.ID.Hex(), nil
}

func (f *fakeStore) ListProducts(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) GetProduct(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeStore) UpdateProduct(_ context.Context, id string, p models.Product) (int64, error) {
	current, ok := f.products[id]
	if !ok {
		return 0, nil
	}
	p.ID = current.ID
	if reflect.DeepEqual(current, p) {
		return 0, nil
	}
	f.products[id] = p
	return 1, nil
}

func (f *fakeStore) DeleteProduct(_ context.Context, id string) (int64, error) {
	if _, ok := f.products[id]; !ok {
		return 0, nil
	}
	delete(f.products, id)
	return 1, nil
}

func (f *fakeStore) CreateOrder(_ context.Context, o models.Order) (*models.Order, error) {
	o.ID = primitive.NewObjectID()
	f.orders[o.ID.Hex()] = o
	return &o, nil
}

func (f *fakeStore) ListOrders(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeStore) ListOrdersByUser(_ context.Context, userID string) ([]models.Order, error) {
	out := make([]models.Order, 0)
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeStore) GetOrder(_ context.Context, id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeStore) UpdateOrderStatus(_ context.Context, id, status string) (int64, error) {
	o, ok := f.orders[id]
	if !ok || o.Status == status {
		return 0, nil
	}
	o.Status = status
	f.orders[id] = o
	return 1, nil
}

func (f *fakeStore) IsAdmin(_ context.Context, uid string) (bool, error) {
	return f.admins[uid], nil
}

type fakeGateway struct {
	orderID  string
	err      error
	validSig string
}

func (f *fakeGateway) CreateOrder(_ context.Context, _ int64) (string, error) {
	return f.orderID, f.err
}

func (f *fakeGateway) VerifySignature(_, _, signature string) bool {
	return signature == f.validSig
}

type fakeSigner struct{}

func (fakeSigner) AuthParams() media.AuthParams {
	return media.AuthParams{Token: "tok-1", Expire: 1893456000, Signature: "sig-1"}
}

func newTestRouter(fs *fakeStore, gw *fakeGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &handlers.Handler{
		Products: fs,
		Orders:   fs,
		Admins:   fs,
		Payments: gw,
		Media:    fakeSigner{},
	}
	r := gin.New()
	routes.RegisterRoutes(r, h, fakeVerifier{})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var l []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &l))
	return l
}
