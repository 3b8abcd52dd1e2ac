package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken indicates the Authorization header was absent.
	ErrMissingToken = errors.New("auth: no token provided")
	// ErrInvalidToken indicates the token failed signature, shape or expiry checks.
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Verifier checks bearer credentials against the process signing secret.
// The secret is injected at construction and immutable afterwards.
type Verifier struct {
	secret   []byte
	validate *validator.Validate
}

// NewVerifier constructs a Verifier.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), validate: validator.New()}
}

// Verify parses a raw Authorization header value of the form
// "<scheme> <token>" and returns the identity carried by the token. The
// scheme word is discarded without being checked against an allow-list.
func (v *Verifier) Verify(rawHeader string) (*Identity, error) {
	if strings.TrimSpace(rawHeader) == "" {
		return nil, ErrMissingToken
	}
	parts := strings.SplitN(rawHeader, " ", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	// A token without a role name would produce a half-built identity;
	// reject it at the boundary instead.
	if err := v.validate.Struct(claims); err != nil {
		return nil, ErrInvalidToken
	}
	return &Identity{Subject: claims.Subject, Role: claims.Role}, nil
}
