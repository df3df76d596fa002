package controllers

import (
	"net/http"

	"github.com/dwisetyadi/warungpos/app/services"
	"github.com/dwisetyadi/warungpos/pkg/bind"
	"github.com/dwisetyadi/warungpos/pkg/response"
)

type categoryRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type CategoryController struct {
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	names, err := c.categories.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, names)
}

func (c *CategoryController) Store(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	category, err := c.categories.Create(r.Context(), req.Name)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, category)
}

// Destroy deletes the category named by the ?name= query parameter,
// cascading to every item in it.
func (c *CategoryController) Destroy(w http.ResponseWriter, r *http.Request) {
	removed, err := c.categories.Delete(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]int64{"items_removed": removed})
}
