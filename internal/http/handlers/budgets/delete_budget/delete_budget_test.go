package deletebudget

import (
	"budgetsync/internal/core/domain/budget"
	"budgetsync/internal/core/domain/user"
	service "budgetsync/internal/core/services/delete_budget"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return result, s.err
}

func serve(s *stubService) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(http.MethodDelete, "/budgets/{budgetID}", New(s))
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest(http.MethodDelete, "/budgets/9", nil))
	return rw
}

func TestDeleteBudget(t *testing.T) {
	s := &stubService{}

	rw := serve(s)

	require.Equal(t, http.StatusOK, rw.Code)
	require.Equal(t, budget.ID(9), s.input.BudgetID)
	require.JSONEq(t, `{"message":"budget deleted"}`, rw.Body.String())
}

func TestServiceErrors(t *testing.T) {
	cases := []struct {
		id     string
		err    error
		status int
	}{
		{id: "unauthenticated", err: user.ErrUserDoesNotExist, status: http.StatusUnauthorized},
		{id: "missing", err: budget.ErrBudgetDoesNotExist, status: http.StatusNotFound},
		{id: "foreign", err: budget.ErrBudgetPermission, status: http.StatusForbidden},
		{id: "storage", err: errors.New("connection reset"), status: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rw := serve(&stubService{err: testcase.err})

			require.Equal(t, testcase.status, rw.Code)
		})
	}
}
