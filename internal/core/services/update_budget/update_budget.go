package updatebudget

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
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

type Input struct {
	UserID                 user.ID
	BudgetID               budget.ID
	Name                   string
	GrossIncome            c.Amount
	RetirementContribution c.Amount
	BenefitDeductions      c.Amount
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

	updated, err := budgets.Update(ctx, budget.UpdateBudgetInput{
		ID:                     existing.ID,
		Name:                   input.Name,
		GrossIncome:            input.GrossIncome,
		RetirementContribution: input.RetirementContribution,
		BenefitDeductions:      input.BenefitDeductions,
		UpdatedAt:              s.now(),
	})
	switch {
	case err == nil:
	case errors.Is(err, budget.ErrBudgetNameAlreadyExists):
		s.log.Info(ctx, "Budget name is taken.", logging.Entry("input", input))
		return result, err
	default:
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := tx.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Budget successfully updated.", logging.Entry("budgetID", updated.ID))
	result.Budget = updated
	return result, nil
}
