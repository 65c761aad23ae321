package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"artiflora_back_end/internal/auth"
)

const verifyTimeout = 5 * time.Second

// AuthRequired extrait le credential bearer et le fait valider par le
// provider d'identité. En cas de succès, user_id et email sont mis dans le
// context gin pour les handlers en aval.
func AuthRequired(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Format Authorization invalide"})
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), verifyTimeout)
		defer cancel()

		identity, err := verifier.Verify(ctx, parts[1])
		if err != nil {
			// Réponse identique quelle que soit la cause de l'échec
			log.Println("❌ Vérification token échouée:", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide ou expiré"})
			c.Abort()
			return
		}

		c.Set("user_id", identity.UID)
		c.Set("email", identity.Email)
		c.Next()
	}
}
