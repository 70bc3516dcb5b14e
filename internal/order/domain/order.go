// Package domain defines the order entities for the food API.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Status is the fulfillment stage of an order.
type Status string

const (
	// StatusFoodProcessing is the initial stage of every placed order.
	StatusFoodProcessing Status = "Food Processing"

	// StatusOutForDelivery marks an order handed to a courier.
	StatusOutForDelivery Status = "Out for Delivery"

	// StatusDelivered marks a completed order.
	StatusDelivered Status = "Delivered"
)

// Valid reports whether the status is one of the known stages.
func (s Status) Valid() bool {
	switch s {
	case StatusFoodProcessing, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// Item is one ordered line, denormalized from the catalog at placement time
// so later catalog edits do not rewrite order history.
type Item struct {
	ItemID   string  `bson:"item_id"`
	Name     string  `bson:"name"`
	Price    float64 `bson:"price"`
	Quantity int     `bson:"quantity"`
}

// Order is a placed order. Payment starts false and flips to true exactly
// once, on successful verification.
type Order struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"user_id"`
	Items     []Item        `bson:"items"`
	Amount    float64       `bson:"amount"`
	Address   string        `bson:"address"`
	Status    Status        `bson:"status"`
	Payment   bool          `bson:"payment"`
	CreatedAt time.Time     `bson:"created_at"`
}

// PlaceOrderOutput is the result of placing an order: the stored order plus
// the checkout session URL the client is redirected to.
type PlaceOrderOutput struct {
	Order      *Order
	SessionURL string
}
