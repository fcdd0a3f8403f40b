package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/krish-maurya/Daily-Planner/pkg/respond"
)

// Middleware rejects requests without a valid bearer token before any
// handler runs, and attaches the resolved identity to the request context.
func Middleware(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				respond.Error(w, r, http.StatusUnauthorized, "missing bearer token")
				return
			}

			ident, err := Verify(secret, tokenString)
			if err != nil {
				logger.Warn("rejected token", zap.Error(err))
				respond.Error(w, r, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), ident)))
		})
	}
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
