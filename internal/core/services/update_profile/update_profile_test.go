package updateprofile

import (
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newInput(state profile.State) Input {
	return Input{
		UserID:                     7,
		FirstName:                  "Ada",
		LastName:                   "Lovelace",
		State:                      state,
		IncomeType:                 profile.IncomeSalary,
		RetirementContributionType: profile.ContributionPercent,
		RetirementContribution:     c.Amount(600),
		PayCycle:                   profile.PayMonthly,
		BenefitDeductions:          c.Amount(15000),
	}
}

func TestFirstUpdateCreatesProfile(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	repo := profile.NewFakeProfileRepository()
	service := New(log, repo)

	// Exercise ---
	result, err := service.Run(context.Background(), newInput("NY"))

	// Verify ---
	require.Nil(t, err)
	require.Equal(t, 1, repo.Count())
	require.Equal(t, user.ID(7), result.Profile.UserID)
	require.Equal(t, c.Amount(600), result.Profile.RetirementContribution)
	require.Equal(t, 1, log.CountByLevel(logging.INFO))
}

func TestLaterUpdatesOverwrite(t *testing.T) {
	// Setup ---
	repo := profile.NewFakeProfileRepository()
	service := New(logging.NewFakeLogger(), repo)
	first, err := service.Run(context.Background(), newInput("NY"))
	require.Nil(t, err)

	// Exercise ---
	second, err := service.Run(context.Background(), newInput("TX"))

	// Verify ---
	require.Nil(t, err)
	require.Equal(t, 1, repo.Count())
	require.Equal(t, first.Profile.ID, second.Profile.ID)
	require.Equal(t, profile.State("TX"), repo.Profiles[0].State)
}

func TestUserComesFromSession(t *testing.T) {
	input := newInput("NY").WithAuthenticatedUser(user.User{ID: 42})

	require.Equal(t, user.ID(42), input.(Input).UserID)
}

func TestStorageErrorIsReturned(t *testing.T) {
	log := logging.NewFakeLogger()
	repo := profile.NewFakeProfileRepository()
	repo.ReturnError = true

	_, err := New(log, repo).Run(context.Background(), newInput("NY"))

	require.NotNil(t, err)
	require.Equal(t, 1, log.CountByLevel(logging.ERROR))
}
