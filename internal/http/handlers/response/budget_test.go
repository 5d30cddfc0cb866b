package response

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderBudgetError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{err: budget.ErrBudgetDoesNotExist, status: http.StatusNotFound, msg: MsgBudgetNotFound},
		{err: budget.ErrBudgetPermission, status: http.StatusForbidden, msg: MsgBudgetForbidden},
		{err: budget.ErrBudgetNameAlreadyExists, status: http.StatusConflict, msg: MsgBudgetNameTaken},
		{err: fmt.Errorf("create: %w", budget.ErrProfileRequired), status: http.StatusUnprocessableEntity, msg: MsgBudgetNeedsProfile},
	}
	for _, testcase := range cases {
		t.Run(testcase.msg, func(t *testing.T) {
			rw := httptest.NewRecorder()

			require.True(t, RenderBudgetError(rw, testcase.err))
			require.Equal(t, testcase.status, rw.Code)
			require.JSONEq(t, `{"error":"`+testcase.msg+`"}`, rw.Body.String())
		})
	}

	require.False(t, RenderBudgetError(httptest.NewRecorder(), errors.New("connection reset")))
}

func TestBudgetFromDomain(t *testing.T) {
	updated := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	b := Budget{}
	b.FromDomainBudget(budget.Budget{
		ID:          4,
		Name:        "Household",
		GrossIncome: c.Amount(12345),
		OtherIncomeSources: []budget.IncomeSource{
			{Category: "rental", Name: "Garage", Amount: c.Amount(5000), Frequency: "monthly"},
		},
		Items:     []budget.Item{{ID: 9, BudgetID: 4, Category: "Housing", Name: "Rent", MinimumPayment: c.Amount(100)}},
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: c.NewOptional(updated, true),
	})

	encoded, err := json.Marshal(b)

	require.Nil(t, err)
	require.JSONEq(t, `{
		"id": 4,
		"name": "Household",
		"gross_income": 123.45,
		"tax_withholding": 0,
		"retirement_contribution": 0,
		"benefit_deductions": 0,
		"other_income_sources": [{"category": "rental", "name": "Garage", "amount": 50, "frequency": "monthly"}],
		"items": [{"id": 9, "category": "Housing", "name": "Rent", "minimum_payment": 1, "preferred_payment": 0}],
		"created_at": "2024-05-01T00:00:00Z",
		"updated_at": "2024-05-02T00:00:00Z"
	}`, string(encoded))
}
