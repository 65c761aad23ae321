package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product : l'identifiant interne Mongo est traduit en champ "id" externe
// sur chaque lecture, le champ "_id" ne sort jamais sur le wire.
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" binding:"required"`
	Price    float64            `bson:"price" json:"price"`
	ImageURL []string           `bson:"image_url" json:"image_url" binding:"required"`
}
