package captcha

import (
	"budgetsync/internal/core/services/captcha"
	"net/http"
	"strings"
)

const (
	CAPTCHA_TOKEN_HEADER  = "X-Captcha-Token"
	CAPTCHA_TOKEN_MAX_LEN = 4096
)

func SetCaptchaTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(CAPTCHA_TOKEN_HEADER))
		if token != "" && len(token) <= CAPTCHA_TOKEN_MAX_LEN {
			r = r.WithContext(captcha.WithToken(r.Context(), captcha.CaptchaToken(token)))
		}
		next.ServeHTTP(w, r)
	})
}
