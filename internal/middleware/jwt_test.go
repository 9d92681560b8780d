package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	Configure("test-secret")

	userID := uuid.New()
	token, err := GenerateToken(userID)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	Configure("secret-one")
	token, err := GenerateToken(uuid.New())
	require.NoError(t, err)

	Configure("secret-two")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestOptionalAuthAnonymousPassesThrough(t *testing.T) {
	Configure("test-secret")

	var sawIdentity bool
	handler := OptionalAuth(func(w http.ResponseWriter, r *http.Request) {
		_, sawIdentity = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/snippets", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sawIdentity)
}

func TestOptionalAuthCarriesIdentity(t *testing.T) {
	Configure("test-secret")

	userID := uuid.New()
	token, err := GenerateToken(userID)
	require.NoError(t, err)

	var gotID uuid.UUID
	handler := OptionalAuth(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/snippets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, userID, gotID)
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	Configure("test-secret")

	handler := RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
