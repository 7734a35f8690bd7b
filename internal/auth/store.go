package auth

import "context"

// UserStore resolves identities for login and for token validation.
type UserStore interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
}
