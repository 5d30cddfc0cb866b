package createbudget

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/profile"
	uow "budgetsync/internal/core/domain/unit_of_work"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"budgetsync/internal/core/services/auth"
	"context"
	"errors"
	"time"
)

type Input struct {
	UserID             user.ID
	Name               string
	GrossIncome        c.Amount
	OtherIncomeSources []budget.IncomeSource
	Items              []budget.ItemInput
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

// Run copies the payroll deductions of the user's profile into the new
// budget. Without a profile there is nothing to copy and the budget is
// refused with budget.ErrProfileRequired.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	tx, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}
	defer tx.Rollback(ctx)

	p, err := tx.Profiles().GetByUserID(ctx, input.UserID)
	switch {
	case err == nil:
	case errors.Is(err, profile.ErrProfileDoesNotExist):
		s.log.Info(ctx, "Budget requested before profile.", logging.Entry("userID", input.UserID))
		return result, budget.ErrProfileRequired
	default:
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	created, err := tx.Budgets().Create(ctx, budget.CreateBudgetInput{
		UserID:                 input.UserID,
		ProfileID:              p.ID,
		Name:                   input.Name,
		GrossIncome:            input.GrossIncome,
		TaxWithholding:         p.TaxWithholding,
		RetirementContribution: p.RetirementContribution,
		BenefitDeductions:      p.BenefitDeductions,
		OtherIncomeSources:     input.OtherIncomeSources,
		Items:                  input.Items,
		CreatedAt:              s.now(),
	})
	switch {
	case err == nil:
	case errors.Is(err, budget.ErrBudgetNameAlreadyExists):
		s.log.Info(ctx, "Budget name is taken.", logging.Entry("userID", input.UserID), logging.Entry("name", input.Name))
		return result, err
	default:
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	if err := tx.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Budget successfully created.",
		logging.Entry("userID", input.UserID),
		logging.Entry("budgetID", created.ID),
		logging.Entry("items", len(created.Items)),
	)
	result.Budget = created
	return result, nil
}
