package auth

import "errors"

var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("auth: user not found")

	// ErrAlreadyExists indicates a user with the same email is stored.
	ErrAlreadyExists = errors.New("auth: user already exists")

	// ErrInvalidCredentials is the single outward signal for every failed
	// login. Unknown email and wrong password both collapse into it so
	// callers cannot probe for account existence; the wrapped cause stays
	// available internally via errors.Unwrap.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken indicates the token failed validation. Malformed,
	// forged and expired tokens are equally untrusted and all map here.
	ErrInvalidToken = errors.New("invalid token")
)
