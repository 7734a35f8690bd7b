package auth

import "time"

// User is an identity record. Exactly one seed identity exists after
// bootstrap; the store interface still supports more so the service can
// grow a registration flow without redesign.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
