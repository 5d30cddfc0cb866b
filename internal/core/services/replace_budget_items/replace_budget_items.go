package replacebudgetitems

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
	"time"
)

// Input carries the complete new list of items. Items left out are deleted.
type Input struct {
	UserID   user.ID
	BudgetID budget.ID
	Items    []budget.ItemInput
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Items []budget.Item
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	now        func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, unitOfWork: unitOfWork, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	tx, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("budgetID", input.BudgetID))
		return result, err
	}
	defer tx.Rollback(ctx)

	budgets := tx.Budgets()
	existing, err := budgets.GetByIDWithLock(ctx, input.BudgetID)
	switch {
	case err == nil:
	case errors.Is(err, budget.ErrBudgetDoesNotExist):
		s.log.Info(ctx, "Budget not found.", logging.Entry("budgetID", input.BudgetID))
		return result, err
	default:
		logging.Error(ctx, s.log, err, logging.Entry("budgetID", input.BudgetID))
		return result, err
	}
	if !existing.IsOwnedBy(input.UserID) {
		s.log.Warning(
			ctx,
			"Budget belongs to another user.",
			logging.Entry("budgetID", input.BudgetID),
			logging.Entry("userID", input.UserID),
		)
		return result, budget.ErrBudgetPermission
	}

	items, err := budgets.ReplaceItems(ctx, existing.ID, input.Items, s.now())
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("budgetID", input.BudgetID))
		return result, err
	}

	if err := tx.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("budgetID", input.BudgetID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Budget items replaced.",
		logging.Entry("budgetID", existing.ID),
		logging.Entry("before", len(existing.Items)),
		logging.Entry("after", len(items)),
	)
	result.Items = items
	return result, nil
}
