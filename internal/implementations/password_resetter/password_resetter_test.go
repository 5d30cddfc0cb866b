package passwordresetter

import (
	"budgetsync/internal/core/domain/user"
	randomstringgenerator "budgetsync/internal/implementations/random_string_generator"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var T0 = time.Date(2020, 1, 1, 15, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Repository *user.FakePasswordResetTokenRepository
	Now        time.Time
	Store      *Store
}

func (s *testSuite) SetupTest() {
	s.Now = T0
	s.Repository = user.NewFakePasswordResetTokenRepository()
	s.Store = NewStore(
		s.Repository,
		randomstringgenerator.NewGenerator(),
		time.Hour,
		func() time.Time { return s.Now },
	)
}

func TestPasswordResetTokenStore(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestIssuedTokenIsPersisted() {
	token, err := s.Store.IssueToken(context.Background(), user.ID(1))

	s.Require().Nil(err)
	s.Equal(user.ID(1), token.UserID)
	s.Equal(T0, token.CreatedAt)
	s.Equal(T0.Add(time.Hour), token.ExpiresAt)
	s.False(token.Used)
	s.NotEmpty(token.Token)

	stored, err := s.Repository.GetByToken(context.Background(), token.Token)
	s.Require().Nil(err)
	s.Equal(token, stored)
}

func (s *testSuite) TestIssuedTokensAreUnique() {
	seen := make(map[user.ResetToken]struct{})
	for i := 0; i < 100; i++ {
		token, err := s.Store.IssueToken(context.Background(), user.ID(1))
		s.Require().Nil(err)
		_, ok := seen[token.Token]
		s.Require().False(ok, "token %v issued twice", token.Token)
		seen[token.Token] = struct{}{}
	}
	s.Equal(100, s.Repository.Count())
}

func (s *testSuite) TestIssueDoesNotCheckUser() {
	_, err := s.Store.IssueToken(context.Background(), user.ID(987654))
	s.Nil(err)
}

func (s *testSuite) TestIssueFailsOnStorageError() {
	s.Repository.ReturnError = true

	_, err := s.Store.IssueToken(context.Background(), user.ID(1))

	s.NotNil(err)
}

func (s *testSuite) TestValidity() {
	cases := []struct {
		id       string
		elapsed  time.Duration
		used     bool
		expected error
	}{
		{id: "fresh", elapsed: 0},
		{id: "59 minutes", elapsed: 59 * time.Minute},
		{id: "exactly at expiry", elapsed: time.Hour},
		{id: "61 minutes", elapsed: 61 * time.Minute, expected: user.ErrPasswordResetTokenExpired},
		{id: "used", elapsed: time.Minute, used: true, expected: user.ErrPasswordResetTokenAlreadyUsed},
		{id: "used and expired", elapsed: 3 * time.Hour, used: true, expected: user.ErrPasswordResetTokenAlreadyUsed},
	}

	for _, testCase := range cases {
		s.Run(testCase.id, func() {
			s.Now = T0
			token, err := s.Store.IssueToken(context.Background(), user.ID(1))
			s.Require().Nil(err)
			if testCase.used {
				s.Require().Nil(s.Repository.MarkUsed(context.Background(), token.ID))
			}

			s.Now = T0.Add(testCase.elapsed)
			validated, err := s.Store.ValidateToken(context.Background(), token.Token)

			if testCase.expected != nil {
				s.Require().ErrorIs(err, testCase.expected)
				return
			}
			s.Require().Nil(err)
			s.Equal(token.ID, validated.ID)
		})
	}
}

func (s *testSuite) TestUnknownToken() {
	_, err := s.Store.IssueToken(context.Background(), user.ID(1))
	s.Require().Nil(err)

	_, err = s.Store.ValidateToken(context.Background(), "unknown")
	s.ErrorIs(err, user.ErrPasswordResetTokenNotFound)

	_, err = s.Store.ValidateToken(context.Background(), "")
	s.ErrorIs(err, user.ErrPasswordResetTokenNotFound)
}

func (s *testSuite) TestValidationHasNoSideEffects() {
	token, err := s.Store.IssueToken(context.Background(), user.ID(1))
	s.Require().Nil(err)

	for i := 0; i < 3; i++ {
		_, err := s.Store.ValidateToken(context.Background(), token.Token)
		s.Require().Nil(err)
	}

	stored, err := s.Repository.GetByToken(context.Background(), token.Token)
	s.Require().Nil(err)
	s.False(stored.Used)
}
