package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"artiflora_back_end/internal/models"
)

func (s *Store) orders() *mongo.Collection {
	return s.db.Collection("orders")
}

// CreateOrder insère la commande puis relit le document inséré pour
// renvoyer exactement ce qui est stocké (id généré compris).
func (s *Store) CreateOrder(ctx context.Context, o models.Order) (*models.Order, error) {
	o.ID = primitive.NilObjectID
	res, err := s.orders().InsertOne(ctx, o)
	if err != nil {
		return nil, err
	}

	var inserted models.Order
	if err := s.orders().FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&inserted); err != nil {
		return nil, err
	}
	return &inserted, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	cursor, err := s.orders().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrdersByUser retourne les commandes d'un utilisateur, les plus
// récentes d'abord.
func (s *Store) ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.orders().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var o models.Order
	err = s.orders().FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrderStatus ne touche qu'au champ status. Zéro modifié = commande
// absente ou statut identique, sans distinction.
func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	res, err := s.orders().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
