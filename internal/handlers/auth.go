package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMe renvoie l'identité vérifiée de l'appelant et son statut admin.
func (h *Handler) AuthMe(c *gin.Context) {
	uid := c.GetString("user_id")
	email := c.GetString("email")

	ctx, cancel := opCtx(c)
	defer cancel()

	isAdmin, err := h.Admins.IsAdmin(ctx, uid)
	if err != nil {
		log.Println("❌ Erreur lookup admin:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vérification des privilèges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uid":     uid,
		"email":   email,
		"isAdmin": isAdmin,
	})
}

func (h *Handler) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "You are authenticated!",
		"uid":     c.GetString("user_id"),
		"email":   c.GetString("email"),
	})
}
