package portfolio

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenIssuer mints and validates the opaque bearer credentials
// presented on admin calls. Tokens are HS256-signed JWTs carrying only
// a subject and expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer signing with secret. Tokens
// expire after ttl.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed admin token valid from now for the configured
// lifetime.
func (t *TokenIssuer) Issue(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate checks signature and expiry, returning ErrUnauthorized on
// any failure.
func (t *TokenIssuer) Validate(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrUnauthorized
	}
	return nil
}

// requireAdmin enforces the bearer-token contract on admin routes. A
// missing or invalid credential rejects the request before any handler
// runs, so failed calls never mutate state.
func (a *App) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return ErrUnauthorized
		}
		if err := a.tokens.Validate(strings.TrimPrefix(header, prefix)); err != nil {
			return err
		}
		return next(c)
	}
}
