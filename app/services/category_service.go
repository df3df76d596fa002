package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dwisetyadi/warungpos/app/models"
	"github.com/dwisetyadi/warungpos/app/repositories"
	"github.com/dwisetyadi/warungpos/config"
	"github.com/dwisetyadi/warungpos/pkg/apperr"
	"github.com/dwisetyadi/warungpos/pkg/cache"
	"github.com/dwisetyadi/warungpos/pkg/collection"
	"github.com/dwisetyadi/warungpos/pkg/metrics"
)

const (
	cacheKeyItems      = "items:all"
	cacheKeyCategories = "categories:all"
)

func cacheTTL() time.Duration { return config.CacheTTL() }

// CategoryService owns the category registry. Uniqueness is case-insensitive
// and enforced here rather than in the store, so the rule holds across
// drivers. Casing of the first writer wins.
type CategoryService struct {
	categories repositories.CategoryRepository
	items      repositories.ItemRepository
}

func NewCategoryService(categories repositories.CategoryRepository, items repositories.ItemRepository) *CategoryService {
	return &CategoryService{categories: categories, items: items}
}

// List returns all category names.
func (s *CategoryService) List(ctx context.Context) ([]string, error) {
	var cached []string
	if cache.Get(cacheKeyCategories, &cached) {
		metrics.CacheHits.WithLabelValues(cacheKeyCategories).Inc()
		return cached, nil
	}
	metrics.CacheMisses.WithLabelValues(cacheKeyCategories).Inc()

	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}
	names := collection.Map(categories, func(c models.Category) string { return c.Name })
	_ = cache.Set(cacheKeyCategories, names, cacheTTL())
	return names, nil
}

// Create registers a new category name. A name that already exists under
// any casing is rejected and leaves the registry unchanged.
func (s *CategoryService) Create(ctx context.Context, name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, apperr.Invalidf("category name must not be empty")
	}

	categories, err := s.categories.All(ctx)
	if err != nil {
		return models.Category{}, err
	}
	exists := collection.Contains(categories, func(c models.Category) bool {
		return strings.EqualFold(c.Name, name)
	})
	if exists {
		return models.Category{}, apperr.Existsf("category %q already exists", name)
	}

	id, err := s.categories.Insert(ctx, name)
	if err != nil {
		return models.Category{}, err
	}

	_ = cache.Forget(cacheKeyCategories)
	return models.Category{ID: id, Name: name}, nil
}

// Ensure registers the name only when no casing variant of it exists yet.
// Called from item submissions, so it never fails on a duplicate.
func (s *CategoryService) Ensure(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	categories, err := s.categories.All(ctx)
	if err != nil {
		return err
	}
	exists := collection.Contains(categories, func(c models.Category) bool {
		return strings.EqualFold(c.Name, name)
	})
	if exists {
		return nil
	}

	if _, err := s.categories.Insert(ctx, name); err != nil {
		return err
	}
	_ = cache.Forget(cacheKeyCategories)
	return nil
}

// Delete removes every casing variant of the name from the registry and
// cascades to the items carrying it. The item cascade is unconditional and
// runs first: items can carry a name with no registry record (Update does
// not ensure categories), and those are swept too even though the registry
// lookup then reports not found.
func (s *CategoryService) Delete(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperr.Invalidf("category name must not be empty")
	}

	items, err := s.items.All(ctx)
	if err != nil {
		return 0, err
	}
	orphaned := collection.Filter(items, func(it models.Item) bool {
		return strings.EqualFold(it.Category, name)
	})

	removed, err := s.items.DeleteByIDs(ctx, collection.Map(orphaned, func(it models.Item) primitive.ObjectID {
		return it.ID
	}))
	if removed > 0 {
		_ = cache.Forget(cacheKeyItems)
	}
	if err != nil {
		return removed, err
	}

	categories, err := s.categories.All(ctx)
	if err != nil {
		return removed, err
	}
	matched := collection.Filter(categories, func(c models.Category) bool {
		return strings.EqualFold(c.Name, name)
	})
	if len(matched) == 0 {
		return removed, apperr.NotFoundf("category %q not found", name)
	}

	if _, err := s.categories.DeleteByIDs(ctx, collection.Map(matched, func(c models.Category) primitive.ObjectID {
		return c.ID
	})); err != nil {
		return removed, err
	}

	_ = cache.Forget(cacheKeyCategories)
	return removed, nil
}
