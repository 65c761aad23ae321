package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DatabaseName = "artiflora"

// --- Variables Globales ---
var (
	MongoClient *mongo.Client
	Mongo       *mongo.Database
	Redis       *redis.Client
)

// ConnectDatabases établit les connexions au démarrage du process.
// Une seule connexion MongoDB partagée par toutes les requêtes (le pooling
// est géré par le driver). Redis est optionnel : sans REDIS_HOST on
// fonctionne sans cache.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	connectMongo(ctx)
	connectRedis(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
}

func connectMongo(ctx context.Context) {
	uri := os.Getenv("DB_URL")
	if uri == "" {
		log.Fatal("❌ DB_URL manquant dans .env")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("❌ Erreur connexion MongoDB:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("❌ MongoDB injoignable:", err)
	}

	MongoClient = client
	Mongo = client.Database(DatabaseName)
	log.Println("✅ Connecté à MongoDB, base :", DatabaseName)
}

func connectRedis(ctx context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️ REDIS_HOST non configuré — cache désactivé")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     host,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Println("⚠️ Redis injoignable — cache désactivé:", err)
		Redis = nil
		return
	}
	log.Println("✅ Connecté à Redis")
}

// CloseMongo ferme la connexion MongoDB (utilisé à l'arrêt).
func CloseMongo() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Println("⚠️ Erreur fermeture MongoDB:", err)
	}
}
