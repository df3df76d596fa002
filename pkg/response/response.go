// Package response writes the JSON envelope used by every handler.
//
// Success bodies carry data and/or a human-readable message; failure bodies
// always carry a message, and storage failures additionally surface the raw
// underlying error text in the "error" field.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/dwisetyadi/warungpos/pkg/apperr"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 JSON response with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Status: http.StatusCreated, Data: data})
}

// Message sends a 200 JSON response with a confirmation message only.
func Message(w http.ResponseWriter, message string) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Message: message})
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: status, Message: message})
}

// FromError maps err through the apperr taxonomy. Taxonomy errors become
// 400/404 with their message; anything else is a 500 whose raw error text is
// attached unredacted for diagnostics.
func FromError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if apperr.IsStorage(err) {
		write(w, status, envelope{
			Status:  status,
			Message: "storage failure",
			Error:   err.Error(),
		})
		return
	}
	write(w, status, envelope{Status: status, Message: err.Error()})
}

// ValidationError sends a 400 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, envelope{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}
