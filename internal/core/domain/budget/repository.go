package budget

import (
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"context"
	"time"
)

type ItemInput struct {
	Category         string
	Name             string
	MinimumPayment   c.Amount
	PreferredPayment c.Amount
}

type CreateBudgetInput struct {
	UserID                 user.ID
	ProfileID              profile.ID
	Name                   string
	GrossIncome            c.Amount
	TaxWithholding         c.Amount
	RetirementContribution c.Amount
	BenefitDeductions      c.Amount
	OtherIncomeSources     []IncomeSource
	Items                  []ItemInput
	CreatedAt              time.Time
}

type UpdateBudgetInput struct {
	ID                     ID
	Name                   string
	GrossIncome            c.Amount
	RetirementContribution c.Amount
	BenefitDeductions      c.Amount
	UpdatedAt              time.Time
}

type BudgetRepository interface {
	// Create stores the budget together with its items.
	Create(ctx context.Context, input CreateBudgetInput) (Budget, error)
	// GetByID returns the budget with its items.
	GetByID(ctx context.Context, id ID) (Budget, error)
	// GetByIDWithLock holds a row lock on the budget until the transaction ends.
	GetByIDWithLock(ctx context.Context, id ID) (Budget, error)
	// ListByUser returns budgets without items, newest first.
	ListByUser(ctx context.Context, userID user.ID) ([]Budget, error)
	Update(ctx context.Context, input UpdateBudgetInput) (Budget, error)
	ReplaceItems(ctx context.Context, id ID, items []ItemInput, updatedAt time.Time) ([]Item, error)
	Delete(ctx context.Context, id ID) error
}
