package deletebudget

import (
	"budgetsync/internal/core/domain/budget"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	uow "budgetsync/internal/core/domain/unit_of_work"
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
	log        logging.Logger
	unitOfWork uow.UnitOfWork
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	return &service{log: log, unitOfWork: unitOfWork}
}

// Run deletes the budget together with its items.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	tx, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer tx.Rollback(ctx)

	budgets := tx.Budgets()
	existing, err := budgets.GetByIDWithLock(ctx, input.BudgetID)
	switch {
	case err == nil:
	case errors.Is(err, budget.ErrBudgetDoesNotExist):
		s.log.Info(ctx, "Budget not found.", logging.Entry("input", input))
		return result, err
	default:
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if !existing.IsOwnedBy(input.UserID) {
		s.log.Warning(ctx, "Budget belongs to another user.", logging.Entry("input", input))
		return result, budget.ErrBudgetPermission
	}

	if err := budgets.Delete(ctx, existing.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := tx.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Budget has been successfully deleted.", logging.Entry("budgetID", existing.ID))
	result.Budget = existing
	return result, nil
}
