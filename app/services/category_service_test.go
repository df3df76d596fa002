package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwisetyadi/warungpos/app/repositories"
	"github.com/dwisetyadi/warungpos/app/services"
	"github.com/dwisetyadi/warungpos/pkg/apperr"
)

func newCategoryFixture() (*services.CategoryService, *services.ItemService) {
	items := repositories.NewMemoryItemRepository()
	categories := repositories.NewMemoryCategoryRepository()
	categorySvc := services.NewCategoryService(categories, items)
	return categorySvc, services.NewItemService(items, categorySvc)
}

func TestCategoryCreate(t *testing.T) {
	svc, _ := newCategoryFixture()
	ctx := context.Background()

	c, err := svc.Create(ctx, "  Minuman ")
	require.NoError(t, err)
	assert.Equal(t, "Minuman", c.Name)
	assert.False(t, c.ID.IsZero())
}

func TestCategoryCreateDuplicateIsCaseInsensitive(t *testing.T) {
	svc, _ := newCategoryFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, "Minuman")
	require.NoError(t, err)

	for _, name := range []string{"Minuman", "minuman", "MINUMAN", " mInUmAn "} {
		_, err := svc.Create(ctx, name)
		assert.ErrorIs(t, err, apperr.ErrExists, "name %q", name)
	}

	// The rejection leaves the registry unchanged: first casing wins.
	names, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Minuman"}, names)
}

func TestCategoryCreateRejectsEmptyName(t *testing.T) {
	svc, _ := newCategoryFixture()

	_, err := svc.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestCategoryEnsureIsIdempotent(t *testing.T) {
	svc, _ := newCategoryFixture()
	ctx := context.Background()

	require.NoError(t, svc.Ensure(ctx, "Makanan"))
	require.NoError(t, svc.Ensure(ctx, "makanan"))
	require.NoError(t, svc.Ensure(ctx, "MAKANAN"))

	names, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Makanan"}, names)
}

func TestCategoryDeleteCascadesAcrossCasing(t *testing.T) {
	svc, itemSvc := newCategoryFixture()
	ctx := context.Background()

	_, _, err := itemSvc.CreateOrMerge(ctx, services.ItemInput{Name: "Teh", Price: 5000, Quantity: 10, Category: "Minuman"})
	require.NoError(t, err)
	_, _, err = itemSvc.CreateOrMerge(ctx, services.ItemInput{Name: "Kopi", Price: 6000, Quantity: 10, Category: "minuman"})
	require.NoError(t, err)
	_, _, err = itemSvc.CreateOrMerge(ctx, services.ItemInput{Name: "Mie Ayam", Price: 12000, Quantity: 5, Category: "Makanan"})
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, "MINUMAN")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	// Only the unrelated category and its item survive.
	names, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Makanan"}, names)

	left, err := itemSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "Mie Ayam", left[0].Name)
}

func TestCategoryDeleteCascadesUnregisteredName(t *testing.T) {
	svc, itemSvc := newCategoryFixture()
	ctx := context.Background()

	item, _, err := itemSvc.CreateOrMerge(ctx, services.ItemInput{Name: "Teh", Price: 5000, Quantity: 1, Category: "Minuman"})
	require.NoError(t, err)

	// Update does not ensure categories, so "Ghost" exists only on the item.
	_, err = itemSvc.Update(ctx, item.ID.Hex(), services.ItemInput{Name: "Teh", Price: 5000, Quantity: 1, Category: "Ghost"})
	require.NoError(t, err)

	// The cascade still sweeps the item even though the registry has no record.
	removed, err := svc.Delete(ctx, "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, int64(1), removed)

	left, err := itemSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestCategoryDeleteUnknownIsNotFound(t *testing.T) {
	svc, _ := newCategoryFixture()

	_, err := svc.Delete(context.Background(), "Ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCategoryDeleteWithNoItems(t *testing.T) {
	svc, _ := newCategoryFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, "Kosong")
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, "kosong")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	names, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
