package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ImageKitAuth délivre les paramètres signés pour un upload direct vers le
// CDN. Route publique, comme dans l'app d'origine.
func (h *Handler) ImageKitAuth(c *gin.Context) {
	c.JSON(http.StatusOK, h.Media.AuthParams())
}
