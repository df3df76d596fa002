package middleware

import (
	"net/http"
	"strings"

	"github.com/dwisetyadi/warungpos/pkg/auth"
	"github.com/dwisetyadi/warungpos/pkg/response"
)

// Auth rejects requests that do not carry a valid Bearer token.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" {
			response.Unauthorized(w)
			return
		}

		if _, err := auth.ValidateToken(token); err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
