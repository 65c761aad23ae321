package routes

import (
	"github.com/gin-gonic/gin"

	"artiflora_back_end/internal/auth"
	"artiflora_back_end/internal/handlers"
	"artiflora_back_end/internal/middleware"
)

// RegisterRoutes applique les trois niveaux de gate : public, authentifié,
// admin (authentifié + présence dans admin_users).
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, verifier auth.Verifier) {
	// Public
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/imagekit-auth", h.ImageKitAuth)

	// Authentifié
	authed := r.Group("", middleware.AuthRequired(verifier))
	authed.GET("/auth/me", h.AuthMe)
	authed.GET("/protected", h.Protected)
	authed.POST("/orders", h.CreateOrder)
	// Le routeur gin refuse /orders/me à côté de /orders/:id (conflit
	// statique/wildcard) : le handler dispatche lui-même le segment "me".
	authed.GET("/orders/:id", h.GetOrderOrMine)
	authed.POST("/razorpay/create-order", h.CreateRazorpayOrder)
	authed.POST("/razorpay/verify-payment", h.VerifyRazorpayPayment)

	// Admin
	admin := authed.Group("", middleware.RequireAdmin(h.Admins))
	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
	admin.GET("/orders", h.ListOrders)
	admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
}
