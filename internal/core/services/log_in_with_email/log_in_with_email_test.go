package loginwithemail

import (
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = c.Email("alice@example.com")
	PASSWORD      = user.RawPassword("Password@123456789")
	SESSION_TOKEN = "test-session-token"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	PasswordHasher    *user.FakePasswordHasher
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.SessionRepository,
		suite.PasswordHasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return NOW },
	)

	hash, err := suite.PasswordHasher.HashPassword(PASSWORD)
	suite.Require().Nil(err)
	_, err = suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Username:     "alice",
		Email:        EMAIL,
		PasswordHash: hash,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
}

func TestLogInWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.Token)
	u, err := suite.SessionRepository.GetUserByToken(context.Background(), result.Token)
	assert.Nil(err)
	assert.Equal(EMAIL, u.Email)
}

func (suite *testSuite) TestEmailCaseIsIgnored() {
	result, err := suite.Service.Run(context.Background(), Input{Email: "Alice@Example.com", Password: PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.Token)
}

func (suite *testSuite) TestInvalidPassword() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: "invalid-password"})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrInvalidCredentials)
	assert.Empty(suite.SessionRepository.UserIdByToken)
}

func (suite *testSuite) TestUnknownEmail() {
	_, err := suite.Service.Run(context.Background(), Input{Email: "bob@example.com", Password: PASSWORD})

	assert := suite.Require()
	assert.ErrorIs(err, user.ErrInvalidCredentials)
	assert.Empty(suite.SessionRepository.UserIdByToken)
}

func (suite *testSuite) TestSessionNotCreated() {
	suite.SessionRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(1, suite.Logger.CountByLevel(logging.ERROR))
}
