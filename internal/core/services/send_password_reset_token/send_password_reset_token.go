package sendpasswordresettoken

import (
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-token::" + string(c.NewEmail(string(i.Email)))
}

// Result carries the issued token to decorators. It must not be exposed to
// the caller, the response is the same whether or not the account exists.
type Result struct {
	Recipient c.Email
	Token     c.Optional[user.PasswordResetToken]
}

type service struct {
	log              logging.Logger
	userRepository   user.UserRepository
	passwordResetter user.PasswordResetter
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordResetter user.PasswordResetter,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordResetter == nil {
		panic(e.NewNilArgumentError("passwordResetter"))
	}
	return &service{
		log:              log,
		userRepository:   userRepository,
		passwordResetter: passwordResetter,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	email := c.NewEmail(string(input.Email))
	u, err := s.userRepository.GetByEmail(ctx, email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "Password reset requested for unknown email.")
		return result, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	token, err := s.passwordResetter.IssueToken(ctx, u.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userId", u.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset token issued.",
		logging.Entry("userId", u.ID),
		logging.Entry("token", token.Token),
		logging.Entry("expiresAt", token.ExpiresAt),
	)
	return Result{Recipient: u.Email, Token: c.NewOptional(token, true)}, nil
}
