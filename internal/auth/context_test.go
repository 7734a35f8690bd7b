package auth

import (
	"context"
	"testing"
)

func TestUserContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := UserFromContext(ctx); ok {
		t.Fatal("expected no user in fresh context")
	}

	u := &User{ID: "u1", Email: "admin@example.com"}
	ctx = ContextWithUser(ctx, u)
	got, ok := UserFromContext(ctx)
	if !ok {
		t.Fatal("expected user in context")
	}
	if got.Email != "admin@example.com" {
		t.Fatalf("unexpected email: %s", got.Email)
	}

	// A nil user must not shadow the stored one.
	if _, ok := UserFromContext(ContextWithUser(ctx, nil)); !ok {
		t.Fatal("nil user should leave the context unchanged")
	}
}
