package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dwisetyadi/warungpos/app/models"
	"github.com/dwisetyadi/warungpos/pkg/collection"
)

// The memory driver keeps each collection in a mutex-guarded map. It backs
// STORE_DRIVER=memory for local development and the service tests; the
// contract matches the Mongo driver exactly, including no-op results for
// unmatched updates and deletes.

// MemoryItemRepository is the in-process items driver.
type MemoryItemRepository struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]models.Item
}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{items: map[primitive.ObjectID]models.Item{}}
}

func (r *MemoryItemRepository) All(_ context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *MemoryItemRepository) FindByID(_ context.Context, id primitive.ObjectID) (models.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *MemoryItemRepository) FindByName(_ context.Context, name string) (models.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Name == name {
			return item, true, nil
		}
	}
	return models.Item{}, false, nil
}

func (r *MemoryItemRepository) Insert(_ context.Context, item models.Item) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = primitive.NewObjectID()
	r.items[item.ID] = item
	return item.ID, nil
}

func (r *MemoryItemRepository) Merge(_ context.Context, id primitive.ObjectID, price float64, category string, add int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil // same as an unmatched UpdateOne
	}
	item.Price = price
	item.Category = category
	item.Quantity += add
	r.items[id] = item
	return nil
}

func (r *MemoryItemRepository) Replace(_ context.Context, id primitive.ObjectID, item models.Item) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	item.ID = id
	r.items[id] = item
	return true, nil
}

func (r *MemoryItemRepository) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *MemoryItemRepository) DeleteByIDs(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := r.items[id]; ok {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

// MemoryCategoryRepository is the in-process categories driver.
type MemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[primitive.ObjectID]models.Category
}

func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{categories: map[primitive.ObjectID]models.Category{}}
}

func (r *MemoryCategoryRepository) All(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *MemoryCategoryRepository) Insert(_ context.Context, name string) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := models.Category{ID: primitive.NewObjectID(), Name: name}
	r.categories[c.ID] = c
	return c.ID, nil
}

func (r *MemoryCategoryRepository) DeleteByIDs(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := r.categories[id]; ok {
			delete(r.categories, id)
			n++
		}
	}
	return n, nil
}

// MemoryReceiptRepository is the in-process receipts driver.
type MemoryReceiptRepository struct {
	mu       sync.RWMutex
	receipts map[primitive.ObjectID]models.Receipt
}

func NewMemoryReceiptRepository() *MemoryReceiptRepository {
	return &MemoryReceiptRepository{receipts: map[primitive.ObjectID]models.Receipt{}}
}

func (r *MemoryReceiptRepository) Insert(_ context.Context, receipt models.Receipt) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	receipt.ID = primitive.NewObjectID()
	r.receipts[receipt.ID] = receipt
	return receipt.ID, nil
}

func (r *MemoryReceiptRepository) FindByID(_ context.Context, id primitive.ObjectID) (models.Receipt, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	receipt, ok := r.receipts[id]
	return receipt, ok, nil
}

func (r *MemoryReceiptRepository) AllNewestFirst(_ context.Context) ([]models.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Receipt, 0, len(r.receipts))
	for _, receipt := range r.receipts {
		out = append(out, receipt)
	}
	collection.SortBy(out, func(a, b models.Receipt) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out, nil
}

func (r *MemoryReceiptRepository) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.receipts[id]; !ok {
		return false, nil
	}
	delete(r.receipts, id)
	return true, nil
}
