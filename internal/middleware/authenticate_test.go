package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-booking/internal/auth"
	"github.com/pkordes/travel-booking/internal/middleware"
)

type stubVerifier struct {
	want   string
	userID uuid.UUID
}

func (s stubVerifier) Verify(token string) (uuid.UUID, error) {
	if token != s.want {
		return uuid.Nil, errors.New("bad token")
	}
	return s.userID, nil
}

// whoAmI echoes the authenticated user ID, or "anonymous".
var whoAmI = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.UserID(r.Context())
	if !ok {
		_, _ = io.WriteString(w, "anonymous")
		return
	}
	_, _ = io.WriteString(w, id.String())
})

func newAuthenticated(userID uuid.UUID) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return middleware.NewAuthenticator(stubVerifier{want: "good", userID: userID}, log)(whoAmI)
}

func TestAuthenticator_ValidToken(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	newAuthenticated(userID).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthenticator_NoHeader_PassesThroughAnonymously(t *testing.T) {
	rec := httptest.NewRecorder()

	newAuthenticated(uuid.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/packages", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestAuthenticator_Rejects(t *testing.T) {
	for name, header := range map[string]string{
		"invalid token": "Bearer nope",
		"wrong scheme":  "Basic Z29vZA==",
		"empty token":   "Bearer ",
		"no scheme":     "good",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()

			newAuthenticated(uuid.New()).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`)
		})
	}
}
