package store

import "go.mongodb.org/mongo-driver/mongo"

// Store regroupe les fonctions d'accès aux données sur la connexion Mongo
// partagée du process. Une méthode par opération d'entité ; la traduction
// clé interne (_id) → id externe est portée par les tags des modèles et
// s'applique donc sur chaque chemin de lecture.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}
