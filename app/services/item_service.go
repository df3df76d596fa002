// Package services implements the inventory and receipt ledger rules on top
// of the repositories: merge-on-name restocks, case-insensitive category
// uniqueness with cascade deletes, and immutable receipt snapshots.
package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dwisetyadi/warungpos/app/models"
	"github.com/dwisetyadi/warungpos/app/repositories"
	"github.com/dwisetyadi/warungpos/pkg/apperr"
	"github.com/dwisetyadi/warungpos/pkg/cache"
	"github.com/dwisetyadi/warungpos/pkg/metrics"
)

// parseObjectID validates an identifier before it reaches the store.
// A malformed hex string short-circuits with InvalidArgument.
func parseObjectID(hex, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperr.Invalidf("invalid %s id %q", what, hex)
	}
	return id, nil
}

// ItemInput carries a validated item submission.
type ItemInput struct {
	Name     string
	Price    float64
	Quantity int
	Category string
}

func (in *ItemInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)

	switch {
	case in.Name == "":
		return apperr.Invalidf("item name must not be empty")
	case in.Category == "":
		return apperr.Invalidf("item category must not be empty")
	case in.Price < 0:
		return apperr.Invalidf("item price must not be negative")
	case in.Quantity < 0:
		return apperr.Invalidf("item quantity must not be negative")
	}
	return nil
}

// ItemService owns the item catalog. It depends on the CategoryService for
// the implicit category-ensure on submission; the registry never depends
// back on the ledger.
type ItemService struct {
	items      repositories.ItemRepository
	categories *CategoryService
}

func NewItemService(items repositories.ItemRepository, categories *CategoryService) *ItemService {
	return &ItemService{items: items, categories: categories}
}

// List returns the full catalog, no ordering guarantee.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	var cached []models.Item
	if cache.Get(cacheKeyItems, &cached) {
		metrics.CacheHits.WithLabelValues(cacheKeyItems).Inc()
		return cached, nil
	}
	metrics.CacheMisses.WithLabelValues(cacheKeyItems).Inc()

	items, err := s.items.All(ctx)
	if err != nil {
		return nil, err
	}
	_ = cache.Set(cacheKeyItems, items, cacheTTL())
	return items, nil
}

// Get fetches one item by identifier.
func (s *ItemService) Get(ctx context.Context, idHex string) (models.Item, error) {
	id, err := parseObjectID(idHex, "item")
	if err != nil {
		return models.Item{}, err
	}

	item, found, err := s.items.FindByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if !found {
		return models.Item{}, apperr.NotFoundf("item %s not found", idHex)
	}
	return item, nil
}

// CreateOrMerge applies the merge-on-name policy: a submission whose name
// exactly matches an existing item restocks it (quantity accumulates,
// price and category overwrite); otherwise a new item is inserted. Either
// way the submitted category is ensured in the registry afterwards.
// Returns the resulting item and whether it was newly created.
func (s *ItemService) CreateOrMerge(ctx context.Context, in ItemInput) (models.Item, bool, error) {
	if err := in.validate(); err != nil {
		return models.Item{}, false, err
	}

	existing, found, err := s.items.FindByName(ctx, in.Name)
	if err != nil {
		return models.Item{}, false, err
	}

	var item models.Item
	created := false
	if found {
		if err := s.items.Merge(ctx, existing.ID, in.Price, in.Category, in.Quantity); err != nil {
			return models.Item{}, false, err
		}
		item = models.Item{
			ID:       existing.ID,
			Name:     existing.Name,
			Price:    in.Price,
			Quantity: existing.Quantity + in.Quantity,
			Category: in.Category,
		}
	} else {
		id, err := s.items.Insert(ctx, models.Item{
			Name:     in.Name,
			Price:    in.Price,
			Quantity: in.Quantity,
			Category: in.Category,
		})
		if err != nil {
			return models.Item{}, false, err
		}
		item = models.Item{ID: id, Name: in.Name, Price: in.Price, Quantity: in.Quantity, Category: in.Category}
		created = true
	}

	if err := s.categories.Ensure(ctx, in.Category); err != nil {
		return models.Item{}, false, err
	}

	_ = cache.Forget(cacheKeyItems)
	return item, created, nil
}

// Update replaces all four fields on the matched identifier.
func (s *ItemService) Update(ctx context.Context, idHex string, in ItemInput) (models.Item, error) {
	id, err := parseObjectID(idHex, "item")
	if err != nil {
		return models.Item{}, err
	}
	if err := in.validate(); err != nil {
		return models.Item{}, err
	}

	item := models.Item{ID: id, Name: in.Name, Price: in.Price, Quantity: in.Quantity, Category: in.Category}
	matched, err := s.items.Replace(ctx, id, item)
	if err != nil {
		return models.Item{}, err
	}
	if !matched {
		return models.Item{}, apperr.NotFoundf("item %s not found", idHex)
	}

	_ = cache.Forget(cacheKeyItems)
	return item, nil
}

// Delete removes one item by identifier.
func (s *ItemService) Delete(ctx context.Context, idHex string) error {
	id, err := parseObjectID(idHex, "item")
	if err != nil {
		return err
	}

	deleted, err := s.items.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFoundf("item %s not found", idHex)
	}

	_ = cache.Forget(cacheKeyItems)
	return nil
}
