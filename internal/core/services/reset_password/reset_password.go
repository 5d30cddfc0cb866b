package resetpassword

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	uow "budgetsync/internal/core/domain/unit_of_work"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Token                   user.ResetToken
	NewPassword             user.RawPassword
	NewPasswordConfirmation user.RawPassword
}

type Result struct {
	UserID user.ID
}

type service struct {
	log              logging.Logger
	unitOfWork       uow.UnitOfWork
	passwordResetter user.PasswordResetter
	passwordHasher   user.PasswordHasher
	now              func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordResetter user.PasswordResetter,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordResetter == nil {
		panic(e.NewNilArgumentError("passwordResetter"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:              log,
		unitOfWork:       unitOfWork,
		passwordResetter: passwordResetter,
		passwordHasher:   passwordHasher,
		now:              now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if _, err := s.passwordResetter.ValidateToken(ctx, input.Token); err != nil {
		return result, s.reject(ctx, input.Token, err)
	}

	if err := user.CheckNewPassword(input.NewPassword, input.NewPasswordConfirmation); err != nil {
		s.log.Info(ctx, "New password rejected.", logging.Entry("token", input.Token), logging.Entry("reason", err))
		return result, err
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("token", input.Token))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		return result, s.fail(ctx, input.Token, err)
	}
	defer uow.Rollback(ctx)

	// The token is re-checked under a row lock, another request could have
	// redeemed it after the validation above.
	token, err := uow.PasswordResetTokens().GetByTokenWithLock(ctx, input.Token)
	if err != nil {
		return result, s.reject(ctx, input.Token, err)
	}
	if err := token.Check(s.now()); err != nil {
		return result, s.reject(ctx, input.Token, err)
	}
	if err := uow.PasswordResetTokens().MarkUsed(ctx, token.ID); err != nil {
		return result, s.reject(ctx, input.Token, err)
	}
	if err := uow.Users().SetPassword(ctx, token.UserID, newPasswordHash); err != nil {
		return result, s.fail(ctx, input.Token, err)
	}
	if err := uow.Commit(ctx); err != nil {
		return result, s.fail(ctx, input.Token, err)
	}

	s.log.Info(
		ctx,
		"New password has been set with a reset token.",
		logging.Entry("userId", token.UserID),
		logging.Entry("token", input.Token),
	)
	return Result{UserID: token.UserID}, nil
}

func (s *service) reject(ctx context.Context, token user.ResetToken, err error) error {
	if errors.Is(err, user.ErrPasswordResetTokenNotFound) ||
		errors.Is(err, user.ErrPasswordResetTokenExpired) ||
		errors.Is(err, user.ErrPasswordResetTokenAlreadyUsed) {
		s.log.Info(ctx, "Password reset token rejected.", logging.Entry("token", token), logging.Entry("reason", err))
		return err
	}
	return s.fail(ctx, token, err)
}

func (s *service) fail(ctx context.Context, token user.ResetToken, err error) error {
	if !errors.Is(err, context.Canceled) {
		logging.Error(ctx, s.log, err, logging.Entry("token", token))
	}
	return err
}
