package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dwisetyadi/warungpos/app/models"
	"github.com/dwisetyadi/warungpos/app/services"
	"github.com/dwisetyadi/warungpos/pkg/bind"
	"github.com/dwisetyadi/warungpos/pkg/collection"
	"github.com/dwisetyadi/warungpos/pkg/response"
)

type receiptRequest struct {
	Lines []interface{} `json:"lines"`
}

// receiptResponse is the API shape of a receipt; the total is derived,
// never stored.
type receiptResponse struct {
	ID        string               `json:"id"`
	Lines     []models.ReceiptLine `json:"lines"`
	CreatedAt time.Time            `json:"created_at"`
	Total     float64              `json:"total"`
}

func toReceiptResponse(receipt models.Receipt) receiptResponse {
	return receiptResponse{
		ID:        receipt.ID.Hex(),
		Lines:     receipt.Lines,
		CreatedAt: receipt.CreatedAt,
		Total:     receipt.Total(),
	}
}

type ReceiptController struct {
	receipts *services.ReceiptService
}

func NewReceiptController(receipts *services.ReceiptService) *ReceiptController {
	return &ReceiptController{receipts: receipts}
}

func (c *ReceiptController) Index(w http.ResponseWriter, r *http.Request) {
	receipts, err := c.receipts.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, collection.Map(receipts, toReceiptResponse))
}

func (c *ReceiptController) Show(w http.ResponseWriter, r *http.Request) {
	receipt, err := c.receipts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, toReceiptResponse(receipt))
}

func (c *ReceiptController) Store(w http.ResponseWriter, r *http.Request) {
	var req receiptRequest
	if _, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := c.receipts.Create(r.Context(), req.Lines)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, toReceiptResponse(receipt))
}

func (c *ReceiptController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.receipts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromError(w, err)
		return
	}
	response.Message(w, "receipt deleted")
}

// Export writes the receipt to storage as a plain-text nota and returns
// its download URL.
func (c *ReceiptController) Export(w http.ResponseWriter, r *http.Request) {
	url, err := c.receipts.Export(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"url": url})
}
