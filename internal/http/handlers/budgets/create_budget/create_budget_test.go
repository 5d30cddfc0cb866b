package createbudget

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/user"
	service "budgetsync/internal/core/services/create_budget"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const VALID_BODY = `{
	"name": "Household",
	"gross_income": 85000,
	"other_income_sources": [{"category": "rental", "name": "Garage", "amount": 300, "frequency": "monthly"}],
	"items": [{"category": "Housing", "name": "Rent", "minimum_payment": 1500, "preferred_payment": "1500.00"}]
}`

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Budget = budget.Budget{
		ID:                 5,
		UserID:             1,
		Name:               input.Name,
		GrossIncome:        input.GrossIncome,
		OtherIncomeSources: input.OtherIncomeSources,
		Items:              []budget.Item{{ID: 1, BudgetID: 5, Category: "Housing", Name: "Rent"}},
		CreatedAt:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	return result, nil
}

func serve(s *stubService, body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	New(s).ServeHTTP(rw, httptest.NewRequest(http.MethodPost, "/budgets", strings.NewReader(body)))
	return rw
}

func TestCreateBudget(t *testing.T) {
	// Setup ---
	s := &stubService{}

	// Exercise ---
	rw := serve(s, VALID_BODY)

	// Verify ---
	require.Equal(t, http.StatusCreated, rw.Code, rw.Body.String())
	require.Equal(t, "Household", s.input.Name)
	require.Equal(t, c.Amount(8500000), s.input.GrossIncome)
	require.Equal(t, budget.IncomeCategory("rental"), s.input.OtherIncomeSources[0].Category)
	require.Equal(t, c.Amount(150000), s.input.Items[0].PreferredPayment)
	require.Contains(t, rw.Body.String(), `"id":5`)
}

func TestInvalidInput(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{id: "not json", body: `{"name":`},
		{id: "no name", body: strings.Replace(VALID_BODY, `"Household"`, `""`, 1)},
		{id: "long name", body: strings.Replace(VALID_BODY, `"Household"`, `"`+strings.Repeat("x", 101)+`"`, 1)},
		{id: "negative income", body: strings.Replace(VALID_BODY, `85000`, `-1`, 1)},
		{id: "unknown frequency", body: strings.Replace(VALID_BODY, `"monthly"`, `"hourly"`, 1)},
		{id: "unnamed item", body: strings.Replace(VALID_BODY, `"Rent"`, `""`, 1)},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := &stubService{}

			rw := serve(s, testcase.body)

			require.Equal(t, http.StatusBadRequest, rw.Code)
			require.Nil(t, s.input)
		})
	}
}

func TestServiceErrors(t *testing.T) {
	cases := []struct {
		id     string
		err    error
		status int
	}{
		{id: "unauthenticated", err: user.ErrUserDoesNotExist, status: http.StatusUnauthorized},
		{id: "no profile", err: budget.ErrProfileRequired, status: http.StatusUnprocessableEntity},
		{id: "name taken", err: budget.ErrBudgetNameAlreadyExists, status: http.StatusConflict},
		{id: "storage", err: context.DeadlineExceeded, status: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rw := serve(&stubService{err: testcase.err}, VALID_BODY)

			require.Equal(t, testcase.status, rw.Code)
		})
	}
}
