package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item is a catalog entry representing a sellable product with stock.
// The catalog holds at most one item per exact name; resubmitting a name
// restocks the existing record instead of creating a duplicate.
type Item struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name"          json:"name"`
	Price    float64            `bson:"price"         json:"price"`
	Quantity int                `bson:"quantity"      json:"quantity"`
	Category string             `bson:"category"      json:"category"`
}
