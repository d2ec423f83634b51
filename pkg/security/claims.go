package security

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenClaims is the identity attached to every authenticated request.
// User is the owner id every store query is scoped by.
type TokenClaims struct {
	User      string `json:"user"`
	ExpiresAt int64  `json:"exp"`
}

func NewTokenClaims(user string, expiresAt int64) TokenClaims {
	return TokenClaims{
		User:      user,
		ExpiresAt: expiresAt,
	}
}

func (c TokenClaims) Valid() error {
	if c.User == "" {
		return fmt.Errorf("token claims missing user")
	}
	if time.Now().Unix() > c.ExpiresAt {
		return fmt.Errorf("token expired at %d", c.ExpiresAt)
	}
	return nil
}

// GenJWT signs claims into the bearer token handed to the client.
func GenJWT(secret string, claims TokenClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseJWTClaims decodes claims without verifying the signature. Callers
// must have authenticated the token against the access token store first.
func ParseJWTClaims(tokenValue string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenValue, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
