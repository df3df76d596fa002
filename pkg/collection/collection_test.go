package collection_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dwisetyadi/warungpos/pkg/collection"
)

func TestMapFilterContains(t *testing.T) {
	names := []string{"Minuman", "Makanan", "Camilan"}

	upper := collection.Map(names, strings.ToUpper)
	assert.Equal(t, []string{"MINUMAN", "MAKANAN", "CAMILAN"}, upper)

	m := collection.Filter(names, func(s string) bool { return strings.HasPrefix(s, "M") })
	assert.Equal(t, []string{"Minuman", "Makanan"}, m)

	assert.True(t, collection.Contains(names, func(s string) bool {
		return strings.EqualFold(s, "MAKANAN")
	}))
	assert.False(t, collection.Contains(names, func(s string) bool {
		return s == "Kopi"
	}))
}

func TestSumAndSortBy(t *testing.T) {
	nums := []int{3, 1, 2}

	total := collection.Sum(nums, func(n int) float64 { return float64(n) * 10 })
	assert.Equal(t, 60.0, total)

	collection.SortBy(nums, func(a, b int) bool { return a > b })
	assert.Equal(t, []int{3, 2, 1}, nums)
}
