package uow

import (
	"budgetsync/internal/core/domain/budget"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/profile"
	uow "budgetsync/internal/core/domain/unit_of_work"
	"budgetsync/internal/core/domain/user"
	dbbudget "budgetsync/internal/db/budget"
	dbprofile "budgetsync/internal/db/profile"
	dbuser "budgetsync/internal/db/user"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// txContext hands out repositories bound to one transaction.
type txContext struct {
	tx pgx.Tx
}

func (c *txContext) Commit(ctx context.Context) error {
	if err := c.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Rollback is a no-op after Commit so that it can always be deferred.
func (c *txContext) Rollback(ctx context.Context) error {
	err := c.tx.Rollback(ctx)
	if err == nil || errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return fmt.Errorf("rollback: %w", err)
}

func (c *txContext) Users() user.UserRepository {
	return dbuser.NewPgxRepository(c.tx)
}

func (c *txContext) Sessions() user.SessionRepository {
	return dbuser.NewPgxSessionRepository(c.tx)
}

func (c *txContext) PasswordResetTokens() user.PasswordResetTokenRepository {
	return dbuser.NewPgxPasswordResetTokenRepository(c.tx)
}

func (c *txContext) Profiles() profile.ProfileRepository {
	return dbprofile.NewPgxProfileRepository(c.tx)
}

func (c *txContext) Budgets() budget.BudgetRepository {
	return dbbudget.NewPgxBudgetRepository(c.tx)
}

// PgxUnitOfWork opens read committed transactions. Reset token redemption
// relies on row locks taken inside them, not on a stricter isolation level.
type PgxUnitOfWork struct {
	pool *pgxpool.Pool
}

func NewPgxUnitOfWork(pool *pgxpool.Pool) *PgxUnitOfWork {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &PgxUnitOfWork{pool: pool}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &txContext{tx: tx}, nil
}
