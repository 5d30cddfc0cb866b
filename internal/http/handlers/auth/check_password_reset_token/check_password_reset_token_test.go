package checkpasswordresettoken

import (
	"budgetsync/internal/core/domain/user"
	service "budgetsync/internal/core/services/check_password_reset_token"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	result service.Result
	err    error
	input  *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return s.result, s.err
}

func serve(s *stubService, path string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/auth/password_reset/{token}", New(s))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, req)
	return rw
}

func TestValidToken(t *testing.T) {
	expiresAt := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
	s := &stubService{result: service.Result{ExpiresAt: expiresAt}}

	rw := serve(s, "/auth/password_reset/some-token")

	assert := require.New(t)
	assert.Equal(http.StatusOK, rw.Code)
	assert.JSONEq(`{"valid":true,"expires_at":"2024-03-01T13:00:00Z"}`, rw.Body.String())
	assert.Equal(user.ResetToken("some-token"), s.input.Token)
}

func TestInvalidToken(t *testing.T) {
	cases := []struct {
		err            error
		expectedStatus int
	}{
		{err: user.ErrPasswordResetTokenNotFound, expectedStatus: http.StatusUnprocessableEntity},
		{err: user.ErrPasswordResetTokenExpired, expectedStatus: http.StatusUnprocessableEntity},
		{err: user.ErrPasswordResetTokenAlreadyUsed, expectedStatus: http.StatusUnprocessableEntity},
		{err: errors.New("timeout"), expectedStatus: http.StatusInternalServerError},
	}

	for _, testcase := range cases {
		t.Run(testcase.err.Error(), func(t *testing.T) {
			rw := serve(&stubService{err: testcase.err}, "/auth/password_reset/some-token")
			assert.Equal(t, testcase.expectedStatus, rw.Code)
		})
	}
}
