package auth

import (
	"context"
	"errors"
	"fmt"
)

// EnsureInitialUser creates the seed identity when it does not exist yet.
// Idempotent: a second call with the same email returns the stored record
// without touching the password hash.
func EnsureInitialUser(ctx context.Context, users UserStore, email, password string) (*User, error) {
	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup initial user: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash initial password: %w", err)
	}
	u := &User{Email: email, PasswordHash: hash}
	if err := users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create initial user: %w", err)
	}
	return u, nil
}
