package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"taskdesk.org/internal/auth"
	"taskdesk.org/internal/obs"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
)

var publicPaths = []string{
	"/auth/login",
	"/metrics",
	"/healthz",
	"/readyz",
	"/v1/info",
	"/",
}

// withAuth gates every non-public route behind a valid bearer token whose
// subject resolves to a stored identity. Missing/malformed header, invalid
// or expired token and unknown subject all produce the same 401; the
// precise cause goes to the log only.
func (a *API) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(r.Header.Get(authHeader))
		if err != nil {
			a.unauthorized(w, r, err.Error())
			return
		}

		claims, err := a.codec.Decode(token)
		if err != nil {
			a.unauthorized(w, r, "token validation failed")
			return
		}
		email := strings.TrimSpace(claims.Subject)
		if email == "" {
			a.unauthorized(w, r, "token subject missing")
			return
		}

		user, err := a.users.FindByEmail(r.Context(), email)
		if errors.Is(err, auth.ErrNotFound) {
			a.unauthorized(w, r, "token subject unknown")
			return
		}
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, "authentication error")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), user)))
	})
}

// unauthorized narrows every rejection cause to one outward response. The
// internal reason is logged for diagnostics but never returned.
func (a *API) unauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	obs.LogRequest(map[string]any{
		"level":      "debug",
		"msg":        "auth_rejected",
		"reason":     reason,
		"path":       r.URL.Path,
		"request_id": RequestIDFromContext(r.Context()),
	})
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, r, http.StatusUnauthorized, "could not validate credentials")
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("missing bearer token")
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearer)) {
		return "", errors.New("invalid authorization scheme")
	}
	token := strings.TrimSpace(header[len(bearer):])
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}
