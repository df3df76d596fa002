package services

import (
	"strings"

	"github.com/dwisetyadi/warungpos/config"
	"github.com/dwisetyadi/warungpos/pkg/apperr"
	"github.com/dwisetyadi/warungpos/pkg/auth"
)

// AuthService authenticates the single configured operator account and
// issues JWTs for the API gate.
type AuthService struct{}

func NewAuthService() *AuthService { return &AuthService{} }

// Login checks the credentials against AUTH_USERNAME / AUTH_PASSWORD_HASH
// and returns a signed token. The same error covers every failure mode so
// the response never reveals which part was wrong.
func (s *AuthService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", apperr.Invalidf("username and password are required")
	}

	hash := config.AuthPasswordHash()
	if username != config.AuthUsername() || hash == "" || !auth.CheckPassword(hash, password) {
		return "", apperr.Invalidf("invalid credentials")
	}
	return auth.GenerateToken(username)
}
