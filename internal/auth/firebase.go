package auth

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Identity : ce que le provider d'identité garantit sur l'appelant.
type Identity struct {
	UID   string
	Email string
}

// Verifier valide un token bearer brut. Toute cause d'échec (expiré,
// malformé, signature invalide, provider injoignable) est rendue de façon
// uniforme : l'appelant ne doit pas pouvoir distinguer pourquoi.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier initialise le SDK Firebase Admin avec le compte de
// service pointé par credentialsPath.
func NewFirebaseVerifier(ctx context.Context, credentialsPath string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("initialisation Firebase: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("client auth Firebase: %w", err)
	}

	log.Println("✅ Firebase initialisé")
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, rawToken)
	if err != nil {
		// Cause volontairement écrasée : réponse uniforme côté API
		return nil, fmt.Errorf("token invalide ou expiré")
	}

	email, _ := token.Claims["email"].(string)
	return &Identity{UID: token.UID, Email: email}, nil
}
