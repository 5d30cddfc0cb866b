package updateprofile

import (
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	service "budgetsync/internal/core/services/update_profile"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const VALID_BODY = `{
	"first_name": "Ada",
	"last_name": "Lovelace",
	"state": "WA",
	"income_type": "Hourly",
	"retirement_contribution_type": "fixed",
	"retirement_contribution": "250.00",
	"pay_cycle": "weekly",
	"benefit_deductions": 80.5
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
	result.Profile = profile.Profile{
		ID:                         1,
		UserID:                     2,
		FirstName:                  input.FirstName,
		LastName:                   input.LastName,
		State:                      input.State,
		IncomeType:                 input.IncomeType,
		RetirementContributionType: input.RetirementContributionType,
		RetirementContribution:     input.RetirementContribution,
		PayCycle:                   input.PayCycle,
		BenefitDeductions:          input.BenefitDeductions,
	}
	return result, nil
}

func serve(s *stubService, body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	New(s).ServeHTTP(rw, httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(body)))
	return rw
}

func TestUpdateProfile(t *testing.T) {
	// Setup ---
	s := &stubService{}

	// Exercise ---
	rw := serve(s, VALID_BODY)

	// Verify ---
	require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	require.Equal(t, profile.State("WA"), s.input.State)
	require.Equal(t, profile.IncomeHourly, s.input.IncomeType)
	require.Equal(t, profile.ContributionFixed, s.input.RetirementContributionType)
	require.Equal(t, c.Amount(25000), s.input.RetirementContribution)
	require.Equal(t, c.Amount(8050), s.input.BenefitDeductions)
	require.Contains(t, rw.Body.String(), `"benefit_deductions":80.50`)
}

func TestInvalidInput(t *testing.T) {
	cases := []struct {
		id   string
		from string
		to   string
	}{
		{id: "unknown state", from: `"state": "WA"`, to: `"state": "DC"`},
		{id: "lower case state", from: `"state": "WA"`, to: `"state": "wa"`},
		{id: "unknown income type", from: `"income_type": "Hourly"`, to: `"income_type": "Tips"`},
		{id: "unknown contribution type", from: `"retirement_contribution_type": "fixed"`, to: `"retirement_contribution_type": "all"`},
		{id: "unknown pay cycle", from: `"pay_cycle": "weekly"`, to: `"pay_cycle": "daily"`},
		{id: "negative contribution", from: `"retirement_contribution": "250.00"`, to: `"retirement_contribution": -1`},
		{id: "negative deductions", from: `"benefit_deductions": 80.5`, to: `"benefit_deductions": -0.01`},
		{id: "missing name", from: `"first_name": "Ada"`, to: `"first_name": ""`},
		{id: "long name", from: `"last_name": "Lovelace"`, to: `"last_name": "` + strings.Repeat("x", 51) + `"`},
		{id: "sub-cent amount", from: `"benefit_deductions": 80.5`, to: `"benefit_deductions": 80.505`},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := &stubService{}

			rw := serve(s, strings.Replace(VALID_BODY, testcase.from, testcase.to, 1))

			require.Equal(t, http.StatusBadRequest, rw.Code)
			require.Nil(t, s.input)
		})
	}
}

func TestUnauthenticated(t *testing.T) {
	rw := serve(&stubService{err: user.ErrUserDoesNotExist}, VALID_BODY)

	require.Equal(t, http.StatusUnauthorized, rw.Code)
}
