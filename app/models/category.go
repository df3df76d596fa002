package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a named grouping of items, unique ignoring case.
// Deleting a category cascades to every item carrying its name.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name"          json:"name"`
}
