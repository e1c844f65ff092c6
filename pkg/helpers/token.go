package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenMinter stamps access tokens for new sessions. Each token is an HS256
// JWT over the session uuid; callers treat it as an opaque bearer string and
// sessions are resolved by exact store lookup, never by parsing.
type TokenMinter struct {
	Secret []byte
}

func NewTokenMinter(secret string) *TokenMinter {
	return &TokenMinter{Secret: []byte(secret)}
}

type SessionClaims struct {
	SessionUUID string `json:"sid"`
	jwt.RegisteredClaims
}

// Mint signs a token bound to the session uuid and its validity window.
func (m *TokenMinter) Mint(sessionUUID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := &SessionClaims{
		SessionUUID: sessionUUID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// Parse validates the signature and returns the embedded claims. The core
// does not rely on this for gating; it exists for diagnostics and tests.
func (m *TokenMinter) Parse(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
