package listbudgets

import (
	"budgetsync/internal/core/domain/budget"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"budgetsync/internal/core/services/auth"
	"context"
)

type Input struct {
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Budgets []budget.Budget
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
	budgets, err := s.budgetRepository.ListByUser(ctx, input.UserID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	result.Budgets = budgets
	return result, nil
}
