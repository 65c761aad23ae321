package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"artiflora_back_end/internal/models"
)

func (s *Store) products() *mongo.Collection {
	return s.db.Collection("products")
}

// CreateProduct insère un produit et retourne l'id généré sous forme hexa.
func (s *Store) CreateProduct(ctx context.Context, p models.Product) (string, error) {
	p.ID = primitive.NilObjectID
	res, err := s.products().InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.products().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct retourne (nil, nil) si le produit est absent ou si l'id n'est
// pas un ObjectID valide : un id malformé équivaut à introuvable.
func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var p models.Product
	err = s.products().FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct remplace tous les champs du document et retourne le nombre
// de documents effectivement modifiés. Zéro couvre à la fois "absent" et
// "aucun champ changé" — la distinction n'est pas faite à ce niveau.
func (s *Store) UpdateProduct(ctx context.Context, id string, p models.Product) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	update := bson.M{"$set": bson.M{
		"name":      p.Name,
		"price":     p.Price,
		"image_url": p.ImageURL,
	}}

	res, err := s.products().UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	res, err := s.products().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
