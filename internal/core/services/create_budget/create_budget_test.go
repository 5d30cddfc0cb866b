package createbudget

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/profile"
	uow "budgetsync/internal/core/domain/unit_of_work"
	"budgetsync/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const USER_ID = 7

var NOW = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	UnitOfWork *uow.FakeUnitOfWork
	Service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.UnitOfWork.ProfileRepository.Profiles = []profile.Profile{{
		ID:                     3,
		UserID:                 USER_ID,
		State:                  "CA",
		TaxWithholding:         c.Amount(2000),
		RetirementContribution: c.Amount(500),
		BenefitDeductions:      c.Amount(12000),
	}}
	suite.Service = New(suite.Logger, suite.UnitOfWork, func() time.Time { return NOW })
}

func TestCreateBudgetService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) input(name string) Input {
	return Input{
		UserID:      USER_ID,
		Name:        name,
		GrossIncome: c.Amount(6000000),
		OtherIncomeSources: []budget.IncomeSource{
			{Category: "pension", Name: "Pension", Amount: c.Amount(100000), Frequency: "monthly"},
		},
		Items: []budget.ItemInput{
			{Category: "Housing", Name: "Rent", MinimumPayment: c.Amount(150000), PreferredPayment: c.Amount(150000)},
		},
	}
}

func (suite *testSuite) TestDeductionsAreCopiedFromProfile() {
	// Exercise ---
	result, err := suite.Service.Run(context.Background(), suite.input("Household"))

	// Verify ---
	assert := suite.Require()
	assert.Nil(err)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
	b := result.Budget
	assert.Equal(profile.ID(3), b.ProfileID)
	assert.Equal(c.Amount(2000), b.TaxWithholding)
	assert.Equal(c.Amount(500), b.RetirementContribution)
	assert.Equal(c.Amount(12000), b.BenefitDeductions)
	assert.Equal(NOW, b.CreatedAt)
	assert.Len(b.Items, 1)
	assert.Len(b.OtherIncomeSources, 1)
	assert.Equal(1, suite.UnitOfWork.BudgetRepository.Count())
}

func (suite *testSuite) TestProfileIsRequired() {
	// Setup ---
	suite.UnitOfWork.ProfileRepository.Profiles = nil

	// Exercise ---
	_, err := suite.Service.Run(context.Background(), suite.input("Household"))

	// Verify ---
	suite.Require().ErrorIs(err, budget.ErrProfileRequired)
	suite.Require().Equal(0, suite.UnitOfWork.BudgetRepository.Count())
	suite.Require().False(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestNameIsUniquePerUser() {
	_, err := suite.Service.Run(context.Background(), suite.input("Household"))
	suite.Require().Nil(err)

	_, err = suite.Service.Run(context.Background(), suite.input("Household"))

	suite.Require().ErrorIs(err, budget.ErrBudgetNameAlreadyExists)
	suite.Require().Equal(1, suite.UnitOfWork.BudgetRepository.Count())
	suite.Require().Equal(0, suite.Logger.CountByLevel(logging.ERROR))
}

func (suite *testSuite) TestTransactionFailure() {
	suite.UnitOfWork.ReturnError = true

	_, err := suite.Service.Run(context.Background(), suite.input("Household"))

	suite.Require().NotNil(err)
	suite.Require().Equal(1, suite.Logger.CountByLevel(logging.ERROR))
}

func (suite *testSuite) TestStorageFailureRollsBack() {
	suite.UnitOfWork.BudgetRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), suite.input("Household"))

	suite.Require().NotNil(err)
	suite.Require().True(suite.UnitOfWork.Context.WasRollbackCalled)
	suite.Require().False(suite.UnitOfWork.Context.WasCommitCalled)
}
