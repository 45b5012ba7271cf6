// Package auth verifies bearer tokens issued by an external identity
// provider and resolves them to the caller's email.
package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token the provider does not accept.
var ErrInvalidToken = errors.New("invalid token")

// Verifier resolves a raw bearer token to a verified principal email.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Claims are the token claims the gateway reads.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
