package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Order : user_id, status et created_at sont estampillés côté serveur à la
// création, jamais repris du body.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Items       []OrderItem        `bson:"items" json:"items" binding:"required"`
	Email       string             `bson:"email" json:"email" binding:"required"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	LastName    string             `bson:"last_name" json:"last_name"`
	Address     string             `bson:"address" json:"address"`
	City        string             `bson:"city" json:"city"`
	State       string             `bson:"state" json:"state"`
	Pincode     string             `bson:"pincode" json:"pincode"`
	PhoneNumber string             `bson:"phone_number" json:"phone_number"`
	Status      string             `bson:"status" json:"status"`
	TotalPrice  float64            `bson:"total_price" json:"total_price"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	Message     string             `bson:"message,omitempty" json:"message,omitempty"`
}

type OrderStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}
