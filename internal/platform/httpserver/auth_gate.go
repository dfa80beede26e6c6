package httpserver

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

// accountIDContextKey carries the authenticated account id from the auth
// gate down to the task handlers.
const accountIDContextKey contextKey = "accountID"

// withAuth guards a route behind a bearer token. On success the verified
// account id is bound into the request context; on failure the request is
// answered here and the wrapped handler never runs.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			writeFailure(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		accountID, err := s.credentials.Verifier.Verify(raw)
		if err != nil {
			writeFailure(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), accountIDContextKey, accountID)))
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively; a bare token without
// the Bearer prefix is also accepted.
func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", false
	}

	parts := strings.Fields(header)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1], true
	}
	if len(parts) == 1 {
		return parts[0], true
	}
	return "", false
}

func actingAccountID(ctx context.Context) string {
	accountID, _ := ctx.Value(accountIDContextKey).(string)
	return accountID
}
