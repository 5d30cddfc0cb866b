package getuserbysessiontoken

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Token user.SessionToken
}

type Result struct {
	User user.User
}

type service struct {
	log               logging.Logger
	sessionRepository user.SessionRepository
}

func New(
	log logging.Logger,
	sessionRepository user.SessionRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &service{log: log, sessionRepository: sessionRepository}
}

// Run reports ErrUserDoesNotExist for an empty, unknown or deleted session.
func (s *service) Run(ctx context.Context, input Input) (Result, error) {
	if input.Token == "" {
		return Result{}, user.ErrUserDoesNotExist
	}
	owner, err := s.sessionRepository.GetUserByToken(ctx, input.Token)
	switch {
	case err == nil:
		return Result{User: owner}, nil
	case errors.Is(err, user.ErrUserDoesNotExist):
		return Result{}, err
	default:
		logging.Error(ctx, s.log, err, logging.Entry("token", input.Token))
		return Result{}, err
	}
}
