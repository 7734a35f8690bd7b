package auth

import (
	"context"
	"errors"
	"testing"
)

func seedStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	if _, err := EnsureInitialUser(context.Background(), store, "admin@example.com", "admin123"); err != nil {
		t.Fatalf("EnsureInitialUser: %v", err)
	}
	return store
}

func TestAuthenticateSuccess(t *testing.T) {
	v := NewVerifier(seedStore(t))

	user, err := v.Authenticate(context.Background(), "admin@example.com", "admin123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Email != "admin@example.com" {
		t.Fatalf("unexpected email: %s", user.Email)
	}
	if user.ID == "" {
		t.Fatal("expected assigned user id")
	}
	if user.PasswordHash == "admin123" {
		t.Fatal("password stored in plaintext")
	}
}

func TestAuthenticateRejectsUniformly(t *testing.T) {
	v := NewVerifier(seedStore(t))

	cases := map[string][2]string{
		"wrong password": {"admin@example.com", "nope"},
		"unknown email":  {"ghost@example.com", "admin123"},
		"empty email":    {"", "admin123"},
		"empty password": {"admin@example.com", ""},
	}
	for name, creds := range cases {
		if _, err := v.Authenticate(context.Background(), creds[0], creds[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
}

func TestEnsureInitialUserIdempotent(t *testing.T) {
	store := NewMemoryStore()

	first, err := EnsureInitialUser(context.Background(), store, "admin@example.com", "admin123")
	if err != nil {
		t.Fatalf("first EnsureInitialUser: %v", err)
	}
	second, err := EnsureInitialUser(context.Background(), store, "admin@example.com", "different")
	if err != nil {
		t.Fatalf("second EnsureInitialUser: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same user, got %s and %s", first.ID, second.ID)
	}
	if err := VerifyPassword(second.PasswordHash, "admin123"); err != nil {
		t.Fatalf("original password should still verify: %v", err)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash equals plaintext")
	}
	if err := VerifyPassword(hash, "admin123"); err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if err := VerifyPassword(hash, "admin124"); err == nil {
		t.Fatal("expected mismatch error")
	}
	if _, err := HashPassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}
