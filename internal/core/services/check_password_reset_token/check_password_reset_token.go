package checkpasswordresettoken

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Token user.ResetToken
}

type Result struct {
	ExpiresAt time.Time
}

type service struct {
	log              logging.Logger
	passwordResetter user.PasswordResetter
}

func New(
	log logging.Logger,
	passwordResetter user.PasswordResetter,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if passwordResetter == nil {
		panic(e.NewNilArgumentError("passwordResetter"))
	}
	return &service{
		log:              log,
		passwordResetter: passwordResetter,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	token, err := s.passwordResetter.ValidateToken(ctx, input.Token)
	switch {
	case err == nil:
		return Result{ExpiresAt: token.ExpiresAt}, nil
	case errors.Is(err, context.Canceled):
		return result, err
	case isTokenRejected(err):
		s.log.Info(
			ctx,
			"Password reset token rejected.",
			logging.Entry("token", input.Token),
			logging.Entry("reason", err),
		)
		return result, err
	default:
		logging.Error(ctx, s.log, err, logging.Entry("token", input.Token))
		return result, err
	}
}

func isTokenRejected(err error) bool {
	return errors.Is(err, user.ErrPasswordResetTokenNotFound) ||
		errors.Is(err, user.ErrPasswordResetTokenExpired) ||
		errors.Is(err, user.ErrPasswordResetTokenAlreadyUsed)
}
