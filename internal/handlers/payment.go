package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artiflora_back_end/internal/payment"
)

// Quirk de compatibilité assumé sur les deux routes Razorpay : les erreurs
// passerelle et les signatures invalides répondent HTTP 200 avec un champ
// error/status, jamais un code d'erreur protocole. Le front historique
// dépend de ce contrat.

// CreateRazorpayOrder crée un ordre de paiement avec capture immédiate.
func (h *Handler) CreateRazorpayOrder(c *gin.Context) {
	var req struct {
		Amount int64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c)
	defer cancel()

	orderID, err := h.Payments.CreateOrder(ctx, req.Amount)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"amount":   req.Amount,
		"currency": payment.Currency,
	})
}

// VerifyRazorpayPayment contrôle la signature de confirmation. Aucun statut
// de commande n'est modifié ici : l'appelant enchaîne explicitement sur
// PUT /orders/:id/status.
func (h *Handler) VerifyRazorpayPayment(c *gin.Context) {
	var req struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		c.JSON(http.StatusOK, gin.H{"error": "missing razorpay_order_id, razorpay_payment_id or razorpay_signature"})
		return
	}

	if !h.Payments.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		log.Printf("⚠️ Signature invalide pour l'ordre %s", req.OrderID)
		c.JSON(http.StatusOK, gin.H{"status": "Invalid signature"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Payment signature verified"})
}
