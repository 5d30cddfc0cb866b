package listbudgets

import (
	"budgetsync/internal/core/domain/budget"
	"budgetsync/internal/core/domain/logging"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOnlyOwnBudgetsAreListed(t *testing.T) {
	// Setup ---
	repo := budget.NewFakeBudgetRepository()
	for _, input := range []budget.CreateBudgetInput{
		{UserID: 1, Name: "Mine"},
		{UserID: 2, Name: "Theirs"},
		{UserID: 1, Name: "Also mine", Items: []budget.ItemInput{{Name: "Rent"}}},
	} {
		_, err := repo.Create(context.Background(), input)
		require.Nil(t, err)
	}
	service := New(logging.NewFakeLogger(), repo)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{UserID: 1})

	// Verify ---
	require.Nil(t, err)
	require.Len(t, result.Budgets, 2)
	require.Equal(t, "Also mine", result.Budgets[0].Name)
	require.Equal(t, "Mine", result.Budgets[1].Name)
	require.Empty(t, result.Budgets[0].Items)
}

func TestNoBudgets(t *testing.T) {
	result, err := New(logging.NewFakeLogger(), budget.NewFakeBudgetRepository()).Run(context.Background(), Input{UserID: 1})

	require.Nil(t, err)
	require.NotNil(t, result.Budgets)
	require.Empty(t, result.Budgets)
}

func TestStorageFailure(t *testing.T) {
	log := logging.NewFakeLogger()
	repo := budget.NewFakeBudgetRepository()
	repo.ReturnError = true

	_, err := New(log, repo).Run(context.Background(), Input{UserID: 1})

	require.NotNil(t, err)
	require.Equal(t, 1, log.CountByLevel(logging.ERROR))
}
