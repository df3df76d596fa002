package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/dwisetyadi/warungpos/pkg/metrics"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(metrics.Middleware())
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	before := testutil.ToFloat64(metrics.RequestTotal.WithLabelValues("GET", "/items/{id}", "204"))

	// Distinct identifiers land on one pattern label, not one label per id.
	for _, id := range []string{"64a0f0f0f0f0f0f0f0f0f0f0", "64a0f0f0f0f0f0f0f0f0f0f1"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	after := testutil.ToFloat64(metrics.RequestTotal.WithLabelValues("GET", "/items/{id}", "204"))
	assert.Equal(t, 2.0, after-before)
}
