package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dwisetyadi/warungpos/pkg/validate"
)

type itemPayload struct {
	Name     string   `json:"name" validate:"required,max=10"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Quantity *int     `json:"quantity" validate:"required,gte=0"`
	Unit     string   `json:"unit" validate:"nullable,in=pcs,box,pack"`
}

func ptr[T any](v T) *T { return &v }

func TestStructValid(t *testing.T) {
	errs := validate.Struct(itemPayload{
		Name: "Teh", Price: ptr(5000.0), Quantity: ptr(2), Unit: "pcs",
	})
	assert.Empty(t, errs)
}

func TestRequiredPointerDistinguishesMissingFromZero(t *testing.T) {
	// Absent keys arrive as nil pointers and fail required.
	errs := validate.Struct(itemPayload{Name: "Teh", Quantity: ptr(1)})
	assert.Contains(t, errs, "price")

	// A present zero passes both required and gte=0.
	errs = validate.Struct(itemPayload{Name: "Teh", Price: ptr(0.0), Quantity: ptr(0)})
	assert.Empty(t, errs)
}

func TestGteRejectsNegative(t *testing.T) {
	errs := validate.Struct(itemPayload{Name: "Teh", Price: ptr(-1.0), Quantity: ptr(1)})
	assert.Contains(t, errs, "price")
}

func TestRequiredStringRejectsBlank(t *testing.T) {
	errs := validate.Struct(itemPayload{Name: "   ", Price: ptr(1.0), Quantity: ptr(1)})
	assert.Contains(t, errs, "name")
}

func TestMaxStringLength(t *testing.T) {
	errs := validate.Struct(itemPayload{Name: "this name is too long", Price: ptr(1.0), Quantity: ptr(1)})
	assert.Contains(t, errs, "name")
}

func TestNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(itemPayload{Name: "Teh", Price: ptr(1.0), Quantity: ptr(1), Unit: ""})
	assert.Empty(t, errs)

	errs = validate.Struct(itemPayload{Name: "Teh", Price: ptr(1.0), Quantity: ptr(1), Unit: "crate"})
	assert.Contains(t, errs, "unit")
}

func TestInRuleKeepsMultiValueParams(t *testing.T) {
	type s struct {
		Kind string `json:"kind" validate:"in=a,b,c,max=5"`
	}
	assert.Empty(t, validate.Struct(s{Kind: "b"}))
	assert.Contains(t, validate.Struct(s{Kind: "z"}), "kind")
}
