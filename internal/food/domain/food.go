// Package domain defines the catalog entities for the food API.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Food is a catalog item. Image holds the bucket key of the uploaded picture,
// served back under /images/:name.
type Food struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Description string        `bson:"description"`
	Price       float64       `bson:"price"`
	Category    string        `bson:"category"`
	Image       string        `bson:"image"`
	CreatedAt   time.Time     `bson:"created_at"`
}

// AddFoodInput contains the parameters for adding a catalog item.
// ImageFilename is the client-supplied name used to derive the bucket key.
type AddFoodInput struct {
	Name          string
	Description   string
	Price         float64
	Category      string
	ImageFilename string
}
