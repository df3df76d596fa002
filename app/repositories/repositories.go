// Package repositories holds the collection-scoped persistence layer.
//
// Two drivers implement the same interfaces: "mongo" (production) and
// "memory" (development and tests), selected via STORE_DRIVER. Repositories
// stay dumb — find/insert/update/delete only; merge semantics, cascades,
// and case handling live in app/services.
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dwisetyadi/warungpos/app/models"
)

// ItemRepository handles store operations for the items collection.
type ItemRepository interface {
	All(ctx context.Context) ([]models.Item, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Item, bool, error)
	FindByName(ctx context.Context, name string) (models.Item, bool, error)
	Insert(ctx context.Context, item models.Item) (primitive.ObjectID, error)
	// Merge overwrites price and category and increments quantity by add.
	Merge(ctx context.Context, id primitive.ObjectID, price float64, category string, add int) error
	// Replace sets all four fields on the matched identifier.
	Replace(ctx context.Context, id primitive.ObjectID, item models.Item) (matched bool, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (deleted bool, err error)
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// CategoryRepository handles store operations for the categories collection.
type CategoryRepository interface {
	All(ctx context.Context) ([]models.Category, error)
	Insert(ctx context.Context, name string) (primitive.ObjectID, error)
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// ReceiptRepository handles store operations for the receipts collection.
type ReceiptRepository interface {
	Insert(ctx context.Context, receipt models.Receipt) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Receipt, bool, error)
	// AllNewestFirst returns receipts ordered by creation time, most recent first.
	AllNewestFirst(ctx context.Context) ([]models.Receipt, error)
	Delete(ctx context.Context, id primitive.ObjectID) (deleted bool, err error)
}
