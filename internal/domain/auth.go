package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the login stub. Their messages are returned to clients as-is.
var (
	ErrMissingPassword    = errors.New("Missing password")
	ErrMissingEmail       = errors.New("Missing email or username")
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrUnknownUser        = errors.New("Note: Only defined users succeed registration")
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens for an authenticated user.
type TokenIssuer interface {
	Issue(userID int, email string, expiry time.Duration) (string, error)
}

// AuthService implements the login and register stubs.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Register(ctx context.Context, email, password string) (id int, token string, err error)
}
