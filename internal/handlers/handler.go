package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"artiflora_back_end/internal/media"
	"artiflora_back_end/internal/models"
)

const requestTimeout = 5 * time.Second

type ProductStore interface {
	CreateProduct(ctx context.Context, p models.Product) (string, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, p models.Product) (int64, error)
	DeleteProduct(ctx context.Context, id string) (int64, error)
}

type OrderStore interface {
	CreateOrder(ctx context.Context, o models.Order) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (int64, error)
}

type AdminChecker interface {
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type MediaSigner interface {
	AuthParams() media.AuthParams
}

// Handler porte les dépendances des routes : accès données, gate admin,
// passerelle de paiement et signeur média.
type Handler struct {
	Products ProductStore
	Orders   OrderStore
	Admins   AdminChecker
	Payments PaymentGateway
	Media    MediaSigner
}

// opCtx borne chaque appel sortant déclenché par une requête.
func opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}
