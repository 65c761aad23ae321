package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AdminChecker : lookup d'existence dans la collection admin_users.
type AdminChecker interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

// RequireAdmin se compose après AuthRequired : 401 est déjà géré en amont,
// ici on ne tranche que authentifié-mais-pas-admin → 403.
func RequireAdmin(admins AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("user_id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		isAdmin, err := admins.IsAdmin(ctx, uid)
		if err != nil {
			log.Println("❌ Erreur lookup admin:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vérification des privilèges"})
			c.Abort()
			return
		}

		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			c.Abort()
			return
		}
		c.Next()
	}
}
