package getbudget

import (
	"budgetsync/internal/core/domain/budget"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"budgetsync/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	UserID   user.ID
	BudgetID budget.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Budget budget.Budget
}

type service struct {
	log              logging.Logger
	budgetRepository budget.BudgetRepository
}

func New(
	log logging.Logger,
	budgetRepository budget.BudgetRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if budgetRepository == nil {
		panic(e.NewNilArgumentError("budgetRepository"))
	}
	return &service{log: log, budgetRepository: budgetRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	b, err := s.budgetRepository.GetByID(ctx, input.BudgetID)
	switch {
	case err == nil:
	case errors.Is(err, budget.ErrBudgetDoesNotExist):
		s.log.Info(ctx, "Budget not found.", logging.Entry("input", input))
		return result, err
	default:
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if !b.IsOwnedBy(input.UserID) {
		s.log.Warning(ctx, "Budget belongs to another user.", logging.Entry("input", input))
		return result, budget.ErrBudgetPermission
	}
	result.Budget = b
	return result, nil
}
