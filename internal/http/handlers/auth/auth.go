package auth

import (
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services/auth"
	"net/http"
	"strings"
)

const (
	AUTH_TOKEN_PREFIX  = "Bearer "
	AUTH_TOKEN_MAX_LEN = 1024
)

// ParseToken reads a session token from the "Authorization: Bearer <token>"
// header.
func ParseToken(r *http.Request) (token user.SessionToken, ok bool) {
	raw, found := strings.CutPrefix(r.Header.Get("Authorization"), AUTH_TOKEN_PREFIX)
	raw = strings.TrimSpace(raw)
	if !found || raw == "" || len(raw) > AUTH_TOKEN_MAX_LEN {
		return token, false
	}
	return user.SessionToken(raw), true
}

func SetAuthTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ParseToken(r)
		if ok {
			r = r.WithContext(auth.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}
