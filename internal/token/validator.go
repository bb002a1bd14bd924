// Package token validates access tokens issued by the external identity
// provider. This service never issues tokens; it only verifies signatures and
// extracts the subject.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"platerra/internal/platform/middleware"
	dErrors "platerra/pkg/domain-errors"
)

// Validator verifies HS256-signed bearer tokens against a shared signing key.
type Validator struct {
	signingKey []byte
}

var _ middleware.TokenValidator = (*Validator)(nil)

// NewValidator creates a validator with the given signing key.
func NewValidator(signingKey string) *Validator {
	return &Validator{signingKey: []byte(signingKey)}
}

// ValidateToken parses and verifies a token, returning the claims this
// service cares about. Expiration and not-before are enforced by the parser.
func (v *Validator) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token")
	}
	if !token.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token missing subject")
	}

	return &middleware.TokenClaims{UserID: sub}, nil
}
