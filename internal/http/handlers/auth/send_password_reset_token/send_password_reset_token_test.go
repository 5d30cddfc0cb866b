package sendpasswordresettoken

import (
	c "budgetsync/internal/core/domain/common"
	ratelimiter "budgetsync/internal/core/domain/rate_limiter"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services/captcha"
	service "budgetsync/internal/core/services/send_password_reset_token"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acknowledgement = `{"message":"If an account exists with that email, a password reset link has been sent."}`

type stubService struct {
	result service.Result
	err    error
	input  *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return s.result, s.err
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/password_reset/token", strings.NewReader(body))
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	return rw
}

func TestResponseIsUniform(t *testing.T) {
	known := &stubService{result: service.Result{
		Recipient: c.Email("known@example.com"),
		Token: c.NewOptional(user.PasswordResetToken{
			ID:        1,
			UserID:    1,
			Token:     user.ResetToken("secret-reset-token-value"),
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ExpiresAt: time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC),
		}, true),
	}}
	unknown := &stubService{result: service.Result{Recipient: c.Email("unknown@example.com")}}

	knownResponse := post(New(known), `{"email": "Known@Example.com"}`)
	unknownResponse := post(New(unknown), `{"email": "unknown@example.com"}`)

	assert := require.New(t)
	assert.Equal(http.StatusOK, knownResponse.Code)
	assert.Equal(http.StatusOK, unknownResponse.Code)
	assert.JSONEq(acknowledgement, knownResponse.Body.String())
	assert.Equal(knownResponse.Body.String(), unknownResponse.Body.String())
	assert.NotContains(knownResponse.Body.String(), "secret-reset-token-value")
	for _, values := range knownResponse.Header() {
		for _, v := range values {
			assert.NotContains(v, "secret-reset-token-value")
		}
	}
	assert.Equal(c.Email("known@example.com"), known.input.Email)
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name           string
		body           string
		err            error
		expectedStatus int
	}{
		{name: "invalid json", body: `{"email": `, expectedStatus: http.StatusBadRequest},
		{name: "invalid email", body: `{"email": "not-an-email"}`, expectedStatus: http.StatusBadRequest},
		{name: "empty email", body: `{}`, expectedStatus: http.StatusBadRequest},
		{name: "rate limit", body: `{"email": "a@example.com"}`, err: ratelimiter.ErrRateLimitExceeded, expectedStatus: http.StatusTooManyRequests},
		{name: "captcha", body: `{"email": "a@example.com"}`, err: captcha.ErrInvalidCaptcha, expectedStatus: http.StatusUnprocessableEntity},
		{name: "storage", body: `{"email": "a@example.com"}`, err: errors.New("connection refused"), expectedStatus: http.StatusInternalServerError},
	}

	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			rw := post(New(&stubService{err: testcase.err}), testcase.body)
			assert.Equal(t, testcase.expectedStatus, rw.Code)
		})
	}
}

func TestStorageFailureIsGeneric(t *testing.T) {
	rw := post(New(&stubService{err: errors.New("pq: relation does not exist")}), `{"email": "a@example.com"}`)

	require.Equal(t, http.StatusInternalServerError, rw.Code)
	require.JSONEq(t, `{"error":"internal error"}`, rw.Body.String())
}
