package listbudgets

import (
	"budgetsync/internal/core/domain/budget"
	"budgetsync/internal/core/domain/user"
	service "budgetsync/internal/core/services/list_budgets"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubService struct {
	err     error
	budgets []budget.Budget
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	result.Budgets = s.budgets
	return result, s.err
}

func serve(s *stubService) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	New(s).ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/budgets", nil))
	return rw
}

func TestListBudgets(t *testing.T) {
	rw := serve(&stubService{budgets: []budget.Budget{
		{ID: 2, UserID: 1, Name: "Second", CreatedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 1, UserID: 1, Name: "First", CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}})

	require.Equal(t, http.StatusOK, rw.Code)
	require.Contains(t, rw.Body.String(), `"name":"Second"`)
	require.NotContains(t, rw.Body.String(), `"items"`)
}

func TestEmptyListIsAnArray(t *testing.T) {
	rw := serve(&stubService{})

	require.Equal(t, http.StatusOK, rw.Code)
	require.JSONEq(t, `{"budgets": []}`, rw.Body.String())
}

func TestUnauthenticated(t *testing.T) {
	rw := serve(&stubService{err: user.ErrUserDoesNotExist})

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}
