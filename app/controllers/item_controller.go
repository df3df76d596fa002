// Package controllers translates HTTP requests into service calls and
// service results into the JSON response envelope.
package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwisetyadi/warungpos/app/services"
	"github.com/dwisetyadi/warungpos/pkg/bind"
	"github.com/dwisetyadi/warungpos/pkg/response"
)

type itemRequest struct {
	Name     string   `json:"name" validate:"required,max=120"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Quantity *int     `json:"quantity" validate:"required,gte=0"`
	Category string   `json:"category" validate:"required,max=120"`
}

func (req itemRequest) input() services.ItemInput {
	return services.ItemInput{
		Name:     req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
		Category: req.Category,
	}
}

type ItemController struct {
	items *services.ItemService
}

func NewItemController(items *services.ItemService) *ItemController {
	return &ItemController{items: items}
}

func (c *ItemController) Index(w http.ResponseWriter, r *http.Request) {
	items, err := c.items.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, items)
}

func (c *ItemController) Show(w http.ResponseWriter, r *http.Request) {
	item, err := c.items.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

// Store creates a new item or restocks an existing one with the same name.
func (c *ItemController) Store(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	item, created, err := c.items.CreateOrMerge(r.Context(), req.input())
	if err != nil {
		response.FromError(w, err)
		return
	}
	if created {
		response.Created(w, item)
		return
	}
	response.Success(w, item)
}

func (c *ItemController) Update(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	item, err := c.items.Update(r.Context(), chi.URLParam(r, "id"), req.input())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, item)
}

func (c *ItemController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.items.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromError(w, err)
		return
	}
	response.Message(w, "item deleted")
}
