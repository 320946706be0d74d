package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of the login cookie.
type Claims struct {
	UserID uint     `json:"uid"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens. A token is the whole
// session; nothing is stored server-side, so logout only clears the cookie.
type TokenService interface {
	GenerateSessionToken(userID uint, roles []string) (token string, expiresAt time.Time, err error)
	// ValidateToken returns ErrInvalidToken for bad signatures and expired tokens.
	ValidateToken(tokenString string) (*Claims, error)
}
