package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func TestSignVerify(t *testing.T) {
	token, err := Sign(testSecret, "user-a", "a@example.com", time.Hour)
	require.NoError(t, err)

	ident, err := Verify(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-a", ident.UserID)
	assert.Equal(t, "a@example.com", ident.Email)
}

func TestVerify_Rejections(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, err := Sign("other-secret", "user-a", "a@example.com", time.Hour)
		require.NoError(t, err)

		_, err = Verify(testSecret, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := Sign(testSecret, "user-a", "a@example.com", -time.Minute)
		require.NoError(t, err)

		_, err = Verify(testSecret, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := Verify(testSecret, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := FromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-Resolved-User", ident.UserID)
		w.WriteHeader(http.StatusOK)
	})
	gate := Middleware(testSecret, zap.NewNop())(next)

	t.Run("valid token passes with identity attached", func(t *testing.T) {
		token, err := Sign(testSecret, "user-a", "a@example.com", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		gate.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-a", w.Header().Get("X-Resolved-User"))
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

		w := httptest.NewRecorder()
		gate.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := Sign(testSecret, "user-a", "a@example.com", -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		gate.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bare token without Bearer prefix is accepted", func(t *testing.T) {
		token, err := Sign(testSecret, "user-a", "a@example.com", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", token)

		w := httptest.NewRecorder()
		gate.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
