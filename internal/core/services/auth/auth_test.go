package auth

import (
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const SESSION_TOKEN = user.SessionToken("test-session-token")

type input struct {
	User user.User
}

func (i input) WithAuthenticatedUser(u user.User) Input {
	i.User = u
	return i
}

type result struct{}

type stubService struct {
	Received []input
}

func (s *stubService) Run(ctx context.Context, input input) (result result, err error) {
	s.Received = append(s.Received, input)
	return result, nil
}

type testAuthSuite struct {
	suite.Suite
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	Inner             *stubService
	Service           services.Service[input, result]
	User              user.User
}

func (suite *testAuthSuite) SetupTest() {
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.Inner = &stubService{}
	suite.Service = WithAuthentication[input, result](suite.SessionRepository, suite.Inner)

	var err error
	suite.User, err = suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Username:     "alice",
		Email:        c.Email("alice@example.com"),
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	})
	suite.Require().Nil(err)
	suite.Require().Nil(suite.SessionRepository.Create(context.Background(), user.CreateSessionInput{
		UserID: suite.User.ID,
		Token:  SESSION_TOKEN,
	}))
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(testAuthSuite))
}

func (suite *testAuthSuite) TestAuthenticated() {
	ctx := WithToken(context.Background(), SESSION_TOKEN)

	_, err := suite.Service.Run(ctx, input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(suite.Inner.Received, 1)
	assert.Equal(suite.User, suite.Inner.Received[0].User)
}

func (suite *testAuthSuite) TestUnknownToken() {
	ctx := WithToken(context.Background(), user.SessionToken("unknown"))

	_, err := suite.Service.Run(ctx, input{})

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
	suite.Require().Empty(suite.Inner.Received)
}

func (suite *testAuthSuite) TestMissingToken() {
	_, err := suite.Service.Run(context.Background(), input{})

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
	suite.Require().Empty(suite.Inner.Received)
}
