package updatebudget

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
	service "budgetsync/internal/core/services/update_budget"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const VALID_BODY = `{"name": "Renamed", "gross_income": 90000, "retirement_contribution": 0, "benefit_deductions": "45.10"}`

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Budget = budget.Budget{ID: input.BudgetID, UserID: 1, Name: input.Name}
	return result, nil
}

func serve(s *stubService, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(http.MethodPut, "/budgets/{budgetID}", New(s))
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest(http.MethodPut, "/budgets/7", strings.NewReader(body)))
	return rw
}

func TestUpdateBudget(t *testing.T) {
	s := &stubService{}

	rw := serve(s, VALID_BODY)

	require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	require.Equal(t, budget.ID(7), s.input.BudgetID)
	require.Equal(t, "Renamed", s.input.Name)
	require.Equal(t, c.Amount(9000000), s.input.GrossIncome)
	require.Equal(t, c.Amount(4510), s.input.BenefitDeductions)
}

func TestInvalidInput(t *testing.T) {
	for _, body := range []string{
		`{"name": ""}`,
		`{"name": "Renamed", "benefit_deductions": -5}`,
		`{"name": "Renamed", "gross_income": "lots"}`,
	} {
		t.Run(body, func(t *testing.T) {
			s := &stubService{}

			rw := serve(s, body)

			require.Equal(t, http.StatusBadRequest, rw.Code)
			require.Nil(t, s.input)
		})
	}
}

func TestNameConflict(t *testing.T) {
	rw := serve(&stubService{err: budget.ErrBudgetNameAlreadyExists}, VALID_BODY)

	require.Equal(t, http.StatusConflict, rw.Code)
	require.JSONEq(t, `{"error":"a budget with this name already exists"}`, rw.Body.String())
}

func TestForeignBudget(t *testing.T) {
	rw := serve(&stubService{err: budget.ErrBudgetPermission}, VALID_BODY)

	require.Equal(t, http.StatusForbidden, rw.Code)
}
