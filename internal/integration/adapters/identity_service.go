package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/piggybank/backend/internal/application/adapter"
)

// ErrInvalidIdentityToken is returned when a bearer token cannot be verified.
var ErrInvalidIdentityToken = errors.New("invalid identity token")

// identityService verifies HMAC-signed tokens issued by the external sign-in
// provider and extracts the display name claim. Nothing else from the token
// is used.
type identityService struct {
	secret []byte
}

// NewIdentityService creates a new identity service instance.
func NewIdentityService(secret string) adapter.IdentityService {
	return &identityService{secret: []byte(secret)}
}

// DisplayName parses and verifies the token and returns its name claim,
// falling back to the subject when no name is present.
func (s *identityService) DisplayName(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidIdentityToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidIdentityToken
	}

	if name, ok := claims["name"].(string); ok && name != "" {
		return name, nil
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub, nil
	}

	return "", ErrInvalidIdentityToken
}
