package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"artiflora_back_end/internal/auth"
	"artiflora_back_end/internal/config"
	"artiflora_back_end/internal/database"
	"artiflora_back_end/internal/handlers"
	"artiflora_back_end/internal/media"
	"artiflora_back_end/internal/payment"
	"artiflora_back_end/internal/routes"
	"artiflora_back_end/internal/store"
)

func main() {
	config.Load()

	ctx := context.Background()

	verifier, err := auth.NewFirebaseVerifier(ctx, os.Getenv("FIREBASE_SERVICE_ACCOUNT"))
	if err != nil {
		log.Fatal("❌ Impossible d'initialiser Firebase :", err)
	}

	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		log.Fatal("❌ Impossible d'initialiser Razorpay : clés manquantes")
	}
	bridge := payment.NewBridge(keyID, keySecret)
	log.Println("✅ Razorpay initialisé")

	signer := media.New(
		os.Getenv("IMAGEKIT_PRIVATE_KEY"),
		os.Getenv("IMAGEKIT_PUBLIC_KEY"),
		os.Getenv("IMAGEKIT_URL_ENDPOINT"),
	)
	log.Println("✅ ImageKit initialisé")

	database.ConnectDatabases()
	defer database.CloseMongo()

	st := store.New(database.Mongo)
	h := &handlers.Handler{
		Products: st,
		Orders:   st,
		Admins:   st,
		Payments: bridge,
		Media:    signer,
	}

	r := gin.Default()
	if origins := allowedOrigins(); len(origins) > 0 {
		r.Use(cors.New(corsConfig(origins)))
	} else {
		log.Println("⚠️ ORIGINS vide — CORS non activé")
	}
	routes.RegisterRoutes(r, h, verifier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Artiflora lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Serveur arrêté :", err)
	}
}

func allowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(os.Getenv("ORIGINS"), ",") {
		if o := strings.TrimSpace(origin); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.AllowCredentials = true
	return cfg
}
