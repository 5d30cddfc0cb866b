package profile

import (
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/db"
	dbuser "budgetsync/internal/db/user"
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxProfileRepository
	user user.User
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxProfileRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) SetupTest() {
	u, err := dbuser.NewPgxRepository(suite.pool).Create(context.Background(), user.CreateUserInput{
		Username:     user.Username(gofakeit.Username()),
		Email:        c.NewEmail(gofakeit.Email()),
		PasswordHash: user.PasswordHash("test-password-hash"),
		CreatedAt:    time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC),
	})
	suite.Require().Nil(err)
	suite.user = u
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxProfileRepository(t *testing.T) {
	db.SkipWithoutTestDatabase(t)
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) input() profile.SaveProfileInput {
	return profile.SaveProfileInput{
		UserID:                     suite.user.ID,
		FirstName:                  "Ada",
		LastName:                   "Lovelace",
		State:                      "NY",
		IncomeType:                 profile.IncomeSalary,
		TaxWithholding:             c.Amount(1250),
		RetirementContributionType: profile.ContributionPercent,
		RetirementContribution:     c.Amount(500),
		PayCycle:                   profile.PayBiweekly,
		BenefitDeductions:          c.Amount(12000),
	}
}

func (suite *testSuite) TestGetMissing() {
	_, err := suite.repo.GetByUserID(context.Background(), suite.user.ID)

	suite.Require().ErrorIs(err, profile.ErrProfileDoesNotExist)
}

func (suite *testSuite) TestSaveCreates() {
	// Exercise ---
	saved, err := suite.repo.Save(context.Background(), suite.input())

	// Verify ---
	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(profile.ID(0), saved.ID)

	loaded, err := suite.repo.GetByUserID(context.Background(), suite.user.ID)
	assert.Nil(err)
	assert.Equal(saved, loaded)
	assert.Equal(c.Amount(500), loaded.RetirementContribution)
	assert.Equal(profile.PayBiweekly, loaded.PayCycle)
}

func (suite *testSuite) TestSaveOverwritesExistingProfile() {
	// Setup ---
	first, err := suite.repo.Save(context.Background(), suite.input())
	suite.Require().Nil(err)
	changed := suite.input()
	changed.State = "TX"
	changed.PayCycle = profile.PayMonthly

	// Exercise ---
	second, err := suite.repo.Save(context.Background(), changed)

	// Verify ---
	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(first.ID, second.ID)
	assert.Equal(profile.State("TX"), second.State)
	assert.Equal(profile.PayMonthly, second.PayCycle)
}
