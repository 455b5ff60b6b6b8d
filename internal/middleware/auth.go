package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenVerifier resolves a bearer token to a user ID.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// JWTAuth returns middleware that requires a valid Bearer token.
func JWTAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return authenticate(verifier, true)
}

// OptionalJWTAuth returns middleware that identifies the caller when a Bearer
// token is present. Requests without an Authorization header pass through
// anonymously; a malformed or invalid token is still rejected.
func OptionalJWTAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return authenticate(verifier, false)
}

func authenticate(verifier TokenVerifier, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				if required {
					writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
