// Package routes wires the HTTP surface: the /api group, auth, health and
// metrics endpoints.
package routes

import (
	"github.com/dwisetyadi/warungpos/app/controllers"
	"github.com/dwisetyadi/warungpos/config"
	"github.com/dwisetyadi/warungpos/pkg/metrics"
	"github.com/dwisetyadi/warungpos/pkg/middleware"
	"github.com/dwisetyadi/warungpos/pkg/router"
)

// Controllers bundles everything the route table needs.
type Controllers struct {
	Items      *controllers.ItemController
	Categories *controllers.CategoryController
	Receipts   *controllers.ReceiptController
	Auth       *controllers.AuthController
}

// RegisterAPI mounts the full route table on r. When AUTH_REQUIRED is set,
// everything under /api except /api/login sits behind the JWT gate.
func RegisterAPI(r *router.Router, c Controllers) {
	r.Post("/api/login", "auth.login", c.Auth.Login)

	var gate []router.Middleware
	if config.AuthRequired() {
		gate = append(gate, middleware.Auth)
	}
	api := r.Group("/api", gate...)

	api.Get("/items", "items.index", c.Items.Index)
	api.Post("/items", "items.store", c.Items.Store)
	api.Get("/items/{id}", "items.show", c.Items.Show)
	api.Put("/items/{id}", "items.update", c.Items.Update)
	api.Delete("/items/{id}", "items.destroy", c.Items.Destroy)

	api.Get("/categories", "categories.index", c.Categories.Index)
	api.Post("/categories", "categories.store", c.Categories.Store)
	api.Delete("/categories", "categories.destroy", c.Categories.Destroy)

	api.Get("/receipts", "receipts.index", c.Receipts.Index)
	api.Post("/receipts", "receipts.store", c.Receipts.Store)
	api.Get("/receipts/{id}", "receipts.show", c.Receipts.Show)
	api.Delete("/receipts/{id}", "receipts.destroy", c.Receipts.Destroy)
	api.Post("/receipts/{id}/export", "receipts.export", c.Receipts.Export)

	r.Get("/metrics", "metrics", metrics.Handler())
}
