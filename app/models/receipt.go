package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dwisetyadi/warungpos/pkg/collection"
)

// ReceiptLine is a point-in-time copy of a sold item. It references no live
// Item record, so later catalog edits never change an archived receipt.
type ReceiptLine struct {
	Name     string  `bson:"name"     json:"name"`
	Price    float64 `bson:"price"    json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Receipt (nota) is an immutable snapshot of a completed sale.
type Receipt struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Lines     []ReceiptLine      `bson:"lines"         json:"lines"`
	CreatedAt time.Time          `bson:"created_at"    json:"created_at"`
}

// Total is the sum of price × quantity over all lines.
func (r Receipt) Total() float64 {
	return collection.Sum(r.Lines, func(l ReceiptLine) float64 {
		return l.Price * float64(l.Quantity)
	})
}
