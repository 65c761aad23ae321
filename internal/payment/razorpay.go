package payment

import (
	"context"
	"fmt"
	"log"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

const Currency = "INR"

// Bridge encapsule le client Razorpay : création d'ordres de paiement et
// vérification de signatures. Aucune mise à jour de commande n'est faite en
// effet de bord d'une vérification — les deux sont découplés.
type Bridge struct {
	client    *razorpay.Client
	keySecret string
}

func NewBridge(keyID, keySecret string) *Bridge {
	return &Bridge{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder crée un ordre de paiement avec capture immédiate. amount est
// en unités mineures (paise).
func (b *Bridge) CreateOrder(ctx context.Context, amount int64) (string, error) {
	data := map[string]interface{}{
		"amount":          amount,
		"currency":        Currency,
		"payment_capture": 1,
	}

	order, err := b.client.Order.Create(data, nil)
	if err != nil {
		log.Println("❌ Erreur Razorpay:", err)
		return "", err
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return "", fmt.Errorf("réponse Razorpay sans id d'ordre")
	}

	log.Printf("💳 Ordre Razorpay créé : %s (%d %s)", orderID, amount, Currency)
	return orderID, nil
}

// VerifySignature contrôle que la confirmation de paiement provient bien de
// Razorpay (HMAC sur order_id|payment_id avec le key secret).
func (b *Bridge) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, b.keySecret)
}
