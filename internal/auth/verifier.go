package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Verifier checks submitted login credentials against stored identities.
type Verifier struct {
	users UserStore
}

// NewVerifier constructs a Verifier backed by the given user store.
func NewVerifier(users UserStore) *Verifier {
	return &Verifier{users: users}
}

// Authenticate resolves the email and compares the password against the
// stored bcrypt hash. Read-only against the user store.
func (v *Verifier) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: missing email or password", ErrInvalidCredentials)
	}

	user, err := v.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown email", ErrInvalidCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, fmt.Errorf("%w: password mismatch", ErrInvalidCredentials)
	}
	return user, nil
}
