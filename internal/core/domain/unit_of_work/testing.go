package uow

import (
	"budgetsync/internal/core/domain/budget"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"context"
	"fmt"
	"sync"
)

type FakeUnitOfWorkContext struct {
	UserRepository               *user.FakeUserRepository
	SessionRepository            *user.FakeSessionRepository
	PasswordResetTokenRepository *user.FakePasswordResetTokenRepository
	ProfileRepository            *profile.FakeProfileRepository
	BudgetRepository             *budget.FakeBudgetRepository
	WasRollbackCalled            bool
	WasCommitCalled              bool

	snapshot fakeSnapshot
	release  func()
	done     bool
}

type fakeSnapshot struct {
	users    user.FakeSnapshot
	profiles []profile.Profile
	budgets  []budget.Budget
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	if c.done {
		return nil
	}
	c.snapshot.users.Restore(c.UserRepository, c.PasswordResetTokenRepository)
	c.ProfileRepository.Restore(c.snapshot.profiles)
	c.BudgetRepository.Restore(c.snapshot.budgets)
	c.finish()
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	if c.done {
		return nil
	}
	c.finish()
	return nil
}

func (c *FakeUnitOfWorkContext) finish() {
	c.done = true
	if c.release != nil {
		c.release()
	}
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) PasswordResetTokens() user.PasswordResetTokenRepository {
	return c.PasswordResetTokenRepository
}

func (c *FakeUnitOfWorkContext) Profiles() profile.ProfileRepository {
	return c.ProfileRepository
}

func (c *FakeUnitOfWorkContext) Budgets() budget.BudgetRepository {
	return c.BudgetRepository
}

// FakeUnitOfWork runs transactions one at a time and restores the fake
// repositories on rollback of an uncommitted transaction.
type FakeUnitOfWork struct {
	UserRepository               *user.FakeUserRepository
	SessionRepository            *user.FakeSessionRepository
	PasswordResetTokenRepository *user.FakePasswordResetTokenRepository
	ProfileRepository            *profile.FakeProfileRepository
	BudgetRepository             *budget.FakeBudgetRepository
	ReturnError                  bool

	// Context is the most recently started transaction.
	Context *FakeUnitOfWorkContext
	Begun   int

	lock sync.Mutex
	tx   sync.Mutex
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	userRepository := user.NewFakeUserRepository()
	return &FakeUnitOfWork{
		UserRepository:               userRepository,
		SessionRepository:            user.NewFakeSessionRepository(userRepository),
		PasswordResetTokenRepository: user.NewFakePasswordResetTokenRepository(),
		ProfileRepository:            profile.NewFakeProfileRepository(),
		BudgetRepository:             budget.NewFakeBudgetRepository(),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnError {
		return nil, fmt.Errorf("could not begin transaction")
	}
	u.tx.Lock()
	c := &FakeUnitOfWorkContext{
		UserRepository:               u.UserRepository,
		SessionRepository:            u.SessionRepository,
		PasswordResetTokenRepository: u.PasswordResetTokenRepository,
		ProfileRepository:            u.ProfileRepository,
		BudgetRepository:             u.BudgetRepository,
		snapshot: fakeSnapshot{
			users:    user.TakeFakeSnapshot(u.UserRepository, u.PasswordResetTokenRepository),
			profiles: u.ProfileRepository.Snapshot(),
			budgets:  u.BudgetRepository.Snapshot(),
		},
		release: u.tx.Unlock,
	}
	u.lock.Lock()
	u.Context = c
	u.Begun++
	u.lock.Unlock()
	return c, nil
}
