package uow

import (
	"budgetsync/internal/core/domain/budget"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"context"
)

// Context is an open transaction. Repositories obtained from it see and
// write only through that transaction.
type Context interface {
	// Rollback must be safe to call after Commit.
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	PasswordResetTokens() user.PasswordResetTokenRepository
	Profiles() profile.ProfileRepository
	Budgets() budget.BudgetRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
