package resetpassword

import (
	"budgetsync/internal/core/domain/user"
	resetpassword "budgetsync/internal/core/services/reset_password"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *resetpassword.Input
}

func (s *stubService) Run(ctx context.Context, input resetpassword.Input) (result resetpassword.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return resetpassword.Result{UserID: 1}, nil
}

func serve(s *stubService, path string, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(http.MethodPost, "/auth/password_reset/{token}", New(s))

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, req)
	return rw
}

func TestSuccess(t *testing.T) {
	// Setup ---
	s := &stubService{}

	// Exercise ---
	rw := serve(s, "/auth/password_reset/abc-DEF_123", `{"password": "new-password", "password_confirmation": "new-password"}`)

	// Verify ---
	assert := require.New(t)
	assert.Equal(http.StatusOK, rw.Code)
	assert.Equal(resetpassword.Input{
		Token:                   user.ResetToken("abc-DEF_123"),
		NewPassword:             user.RawPassword("new-password"),
		NewPasswordConfirmation: user.RawPassword("new-password"),
	}, *s.input)
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			err:            user.ErrPasswordResetTokenNotFound,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"invalid or expired link"}`,
		},
		{
			err:            user.ErrPasswordResetTokenAlreadyUsed,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"this reset link has already been used"}`,
		},
		{
			err:            user.ErrPasswordResetTokenExpired,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"this reset link has expired, please request a new one"}`,
		},
		{
			err:            user.ErrPasswordsDoNotMatch,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"passwords do not match"}`,
		},
		{
			err:            fmt.Errorf("%w (length)", user.ErrPasswordTooWeak),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"password is too weak"}`,
		},
		{
			err:            errors.New("could not commit transaction"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal error"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.err.Error(), func(t *testing.T) {
			rw := serve(&stubService{err: testcase.err}, "/auth/password_reset/token", `{"password": "a", "password_confirmation": "b"}`)

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			assert.JSONEq(t, testcase.expectedBody, rw.Body.String())
		})
	}
}

func TestWeakPasswordIsLeftToService(t *testing.T) {
	s := &stubService{err: user.ErrPasswordResetTokenNotFound}

	rw := serve(s, "/auth/password_reset/unknown", `{"password": "1", "password_confirmation": "1"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rw.Code)
	require.NotNil(t, s.input)
	require.JSONEq(t, `{"error":"invalid or expired link"}`, rw.Body.String())
}

func TestInvalidBody(t *testing.T) {
	s := &stubService{}

	rw := serve(s, "/auth/password_reset/token", `{"password": `)

	require.Equal(t, http.StatusBadRequest, rw.Code)
	require.Nil(t, s.input)
}

func TestTooLongToken(t *testing.T) {
	s := &stubService{}

	rw := serve(s, "/auth/password_reset/"+strings.Repeat("a", TOKEN_MAX_LEN+1), `{"password": "new-password", "password_confirmation": "new-password"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rw.Code)
	require.Nil(t, s.input)
}
