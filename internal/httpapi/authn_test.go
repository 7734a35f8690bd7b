package httpapi

import (
	"net/http"
	"testing"
	"time"

	"taskdesk.org/internal/auth"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "empty", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "scheme only", header: "Bearer ", wantErr: true},
		{name: "ok", header: "Bearer tok123", want: "tok123"},
		{name: "case insensitive scheme", header: "bearer tok123", want: "tok123"},
		{name: "padded", header: "  Bearer tok123  ", want: "tok123"},
	}
	for _, tc := range cases {
		got, err := extractBearerToken(tc.header)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAuthGateRejectsUniformly(t *testing.T) {
	c := newTestAPI(t)

	// Valid signature but expired: issued by a codec whose clock sits in
	// the past, verified against the server's real clock.
	past := time.Now().Add(-2 * time.Hour)
	expiredCodec, err := auth.NewTokenCodec("test-secret", auth.WithClock(func() time.Time { return past }))
	if err != nil {
		t.Fatalf("NewTokenCodec: %v", err)
	}
	expired, _, err := expiredCodec.Issue("admin@example.com", time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Valid, unexpired token whose subject no longer resolves to a user.
	ghost, _, err := c.codec.Issue("ghost@example.com", time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cases := map[string]map[string]string{
		"missing header":   nil,
		"malformed header": {"Authorization": "Token abc"},
		"garbage token":    authHeaders("not.a.jwt"),
		"expired token":    authHeaders(expired),
		"unknown subject":  authHeaders(ghost),
	}
	for name, headers := range cases {
		resp := c.get("/tasks/", nil, headers)
		body := decodeBody[map[string]any](t, resp)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, resp.StatusCode)
		}
		if resp.Header.Get("WWW-Authenticate") != "Bearer" {
			t.Fatalf("%s: expected bearer challenge, got %q", name, resp.Header.Get("WWW-Authenticate"))
		}
		if body["error"] != "could not validate credentials" {
			t.Fatalf("%s: rejection leaks cause: %v", name, body["error"])
		}
	}
}

func TestAuthGatePassesValidToken(t *testing.T) {
	c := newTestAPI(t)
	token := c.obtainToken()

	resp := c.get("/tasks/", nil, authHeaders(token))
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
