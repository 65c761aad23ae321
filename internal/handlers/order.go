package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"artiflora_back_end/internal/models"
)

// CreateOrder : user_id, status et created_at sont estampillés depuis le
// context authentifié — tout ce que le body contient pour ces champs est
// écrasé.
func (h *Handler) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order.UserID = c.GetString("user_id")
	order.Status = "Ordered"
	order.CreatedAt = time.Now().UTC()

	ctx, cancel := opCtx(c)
	defer cancel()

	created, err := h.Orders.CreateOrder(ctx, order)
	if err != nil {
		log.Println("❌ Erreur création commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commande"})
		return
	}

	log.Printf("✅ Commande %s créée pour user %s", created.ID.Hex(), created.UserID)
	c.JSON(http.StatusCreated, created)
}

// Liste complète, réservée aux admins.
func (h *Handler) ListOrders(c *gin.Context) {
	ctx, cancel := opCtx(c)
	defer cancel()

	orders, err := h.Orders.ListOrders(ctx)
	if err != nil {
		log.Println("❌ Erreur listing commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// MyOrders : commandes de l'appelant, les plus récentes d'abord.
func (h *Handler) MyOrders(c *gin.Context) {
	uid := c.GetString("user_id")

	ctx, cancel := opCtx(c)
	defer cancel()

	orders, err := h.Orders.ListOrdersByUser(ctx, uid)
	if err != nil {
		log.Println("❌ Erreur commandes utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderOrMine dispatche GET /orders/me vers la liste de l'appelant,
// tout autre segment étant traité comme un id de commande.
func (h *Handler) GetOrderOrMine(c *gin.Context) {
	if c.Param("id") == "me" {
		h.MyOrders(c)
		return
	}
	h.GetOrder(c)
}

// GetOrder : lisible par son propriétaire ou un admin. Un non-propriétaire
// non-admin reçoit 404 (et non 403) pour ne pas révéler l'existence de la
// commande.
func (h *Handler) GetOrder(c *gin.Context) {
	uid := c.GetString("user_id")

	ctx, cancel := opCtx(c)
	defer cancel()

	order, err := h.Orders.GetOrder(ctx, c.Param("id"))
	if err != nil {
		log.Println("❌ Erreur lecture commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commande"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.UserID != uid {
		isAdmin, err := h.Admins.IsAdmin(ctx, uid)
		if err != nil {
			log.Println("❌ Erreur lookup admin:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vérification des privilèges"})
			return
		}
		if !isAdmin {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus (admin). Statut inchangé et commande absente répondent
// tous deux 404 — le niveau données ne les distingue pas.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var update models.OrderStatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	modified, err := h.Orders.UpdateOrderStatus(ctx, c.Param("id"), update.Status)
	if err != nil {
		log.Println("❌ Erreur mise à jour statut:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour statut"})
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or status was not changed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}
