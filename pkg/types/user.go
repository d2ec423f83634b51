package types

import "github.com/moodnest/moodnest-api/pkg/security"

const (
	TABLE_USER         = "mn_user"
	TABLE_ACCESS_TOKEN = "mn_access_token"
)

type User struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	Pin       string `json:"-" db:"pin"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// AccessToken is the persisted session record. Token is the JWT value the
// client sends back; the DB row is the source of truth for validity.
type AccessToken struct {
	ID        int64  `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	Token     string `json:"token" db:"token"`
	Info      string `json:"info" db:"info"`
	ExpiresAt int64  `json:"expires_at" db:"expires_at"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

func (t AccessToken) TokenClaims() (*security.TokenClaims, error) {
	return security.ParseJWTClaims(t.Token)
}
