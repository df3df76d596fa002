package controllers

import (
	"net/http"

	"github.com/dwisetyadi/warungpos/app/services"
	"github.com/dwisetyadi/warungpos/pkg/apperr"
	"github.com/dwisetyadi/warungpos/pkg/bind"
	"github.com/dwisetyadi/warungpos/pkg/response"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login exchanges operator credentials for a bearer token. Bad credentials
// come back as 401, not 400.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.auth.Login(req.Username, req.Password)
	if err != nil {
		if apperr.Status(err) == http.StatusBadRequest {
			response.Unauthorized(w)
			return
		}
		response.FromError(w, err)
		return
	}
	response.Success(w, map[string]string{"token": token})
}
