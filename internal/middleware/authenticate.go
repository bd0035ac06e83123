package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/travel-booking/internal/auth"
)

// TokenVerifier resolves a bearer token to the user it was issued for.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// NewAuthenticator returns a middleware that reads "Authorization: Bearer <token>",
// verifies it and stores the user ID in the request context (see auth.UserID).
// Requests without the header pass through anonymously; handlers that need an
// actor reject them. A present but invalid token is rejected with 401.
func NewAuthenticator(tokens TokenVerifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "authorization header must be a bearer token")
				return
			}

			userID, err := tokens.Verify(strings.TrimSpace(token))
			if err != nil {
				log.DebugContext(r.Context(), "rejected bearer token", "error", err)
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// writeError writes the API's JSON error envelope. It mirrors the handler
// package's shape for requests rejected before reaching a handler.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
