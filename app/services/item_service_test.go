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

func newItemFixture() (*services.ItemService, *services.CategoryService, *repositories.MemoryItemRepository, *repositories.MemoryCategoryRepository) {
	items := repositories.NewMemoryItemRepository()
	categories := repositories.NewMemoryCategoryRepository()
	categorySvc := services.NewCategoryService(categories, items)
	return services.NewItemService(items, categorySvc), categorySvc, items, categories
}

func TestCreateInsertsNewItem(t *testing.T) {
	svc, categorySvc, _, _ := newItemFixture()
	ctx := context.Background()

	item, created, err := svc.CreateOrMerge(ctx, services.ItemInput{
		Name: "Es Teh Manis", Price: 5000, Quantity: 10, Category: "Minuman",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, item.ID.IsZero())
	assert.Equal(t, 10, item.Quantity)

	// Category is ensured as a side effect.
	names, err := categorySvc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Minuman"}, names)
}

func TestCreateMergesOnExactName(t *testing.T) {
	svc, _, _, _ := newItemFixture()
	ctx := context.Background()

	first, created, err := svc.CreateOrMerge(ctx, services.ItemInput{
		Name: "Kopi Hitam", Price: 5000, Quantity: 10, Category: "Minuman",
	})
	require.NoError(t, err)
	require.True(t, created)

	merged, created, err := svc.CreateOrMerge(ctx, services.ItemInput{
		Name: "Kopi Hitam", Price: 6000, Quantity: 5, Category: "Kopi",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 15, merged.Quantity)
	assert.Equal(t, 6000.0, merged.Price)
	assert.Equal(t, "Kopi", merged.Category)

	// One document, not two.
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateNameCaseIsDistinct(t *testing.T) {
	svc, _, _, _ := newItemFixture()
	ctx := context.Background()

	_, created, err := svc.CreateOrMerge(ctx, services.ItemInput{Name: "Teh", Price: 1, Quantity: 1, Category: "A"})
	require.NoError(t, err)
	require.True(t, created)

	// Merge matches the exact name only; a casing variant is a new item.
	_, created, err = svc.CreateOrMerge(ctx, services.ItemInput{Name: "teh", Price: 1, Quantity: 1, Category: "A"})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, _, items, _ := newItemFixture()
	ctx := context.Background()

	cases := []services.ItemInput{
		{Name: "", Price: 1, Quantity: 1, Category: "A"},
		{Name: "X", Price: 1, Quantity: 1, Category: "  "},
		{Name: "X", Price: -1, Quantity: 1, Category: "A"},
		{Name: "X", Price: 1, Quantity: -1, Category: "A"},
	}
	for _, in := range cases {
		_, _, err := svc.CreateOrMerge(ctx, in)
		assert.ErrorIs(t, err, apperr.ErrInvalid)
	}

	all, err := items.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateAllowsZeroPriceAndQuantity(t *testing.T) {
	svc, _, _, _ := newItemFixture()

	item, created, err := svc.CreateOrMerge(context.Background(), services.ItemInput{
		Name: "Sample", Price: 0, Quantity: 0, Category: "Promo",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 0.0, item.Price)
	assert.Equal(t, 0, item.Quantity)
}

func TestGetRejectsMalformedID(t *testing.T) {
	svc, _, _, _ := newItemFixture()

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	svc, _, _, _ := newItemFixture()

	_, err := svc.Get(context.Background(), "64a0f0f0f0f0f0f0f0f0f0f0")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateReplacesAllFields(t *testing.T) {
	svc, _, _, _ := newItemFixture()
	ctx := context.Background()

	item, _, err := svc.CreateOrMerge(ctx, services.ItemInput{Name: "Old", Price: 1000, Quantity: 5, Category: "A"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, item.ID.Hex(), services.ItemInput{Name: "New", Price: 2000, Quantity: 7, Category: "B"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, 2000.0, updated.Price)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, "B", updated.Category)

	got, err := svc.Get(ctx, item.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	svc, _, _, _ := newItemFixture()

	_, err := svc.Update(context.Background(), "64a0f0f0f0f0f0f0f0f0f0f0",
		services.ItemInput{Name: "X", Price: 1, Quantity: 1, Category: "A"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteRemovesItem(t *testing.T) {
	svc, _, _, _ := newItemFixture()
	ctx := context.Background()

	item, _, err := svc.CreateOrMerge(ctx, services.ItemInput{Name: "X", Price: 1, Quantity: 1, Category: "A"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, item.ID.Hex()))
	_, err = svc.Get(ctx, item.ID.Hex())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// Deleting again reports not found.
	assert.ErrorIs(t, svc.Delete(ctx, item.ID.Hex()), apperr.ErrNotFound)
}
