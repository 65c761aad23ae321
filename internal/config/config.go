package config

import (
	"log"

	"github.com/joho/godotenv"
)

// Load charge .env ; en son absence on continue avec les variables
// d'environnement du système (déploiement conteneurisé).
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️ Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
		return
	}
	log.Println("✅ Fichier .env chargé")
}
