package changepassword

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	uow "budgetsync/internal/core/domain/unit_of_work"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"budgetsync/internal/core/services/auth"
	"context"
)

type Input struct {
	CurrentPassword         user.RawPassword
	NewPassword             user.RawPassword
	NewPasswordConfirmation user.RawPassword
	User                    user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	// SignedOutSessions counts the other sessions of the user that were ended.
	SignedOutSessions int64
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
}

// New changes the password of the authenticated user and ends all of their
// sessions except the one the request was made with.
func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{log: log, unitOfWork: unitOfWork, passwordHasher: passwordHasher}
}

func (s *service) Run(ctx context.Context, input Input) (Result, error) {
	userID := logging.Entry("userId", input.User.ID)

	if !s.passwordHasher.ValidatePassword(input.CurrentPassword, input.User.PasswordHash) {
		s.log.Warning(ctx, "Password change rejected, current password does not match.", userID)
		return Result{}, user.ErrInvalidCredentials
	}
	if err := user.CheckNewPassword(input.NewPassword, input.NewPasswordConfirmation); err != nil {
		return Result{}, err
	}

	hash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		logging.Error(ctx, s.log, err, userID)
		return Result{}, err
	}
	current, _ := auth.TokenFromContext(ctx)

	tx, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, userID)
		return Result{}, err
	}
	defer tx.Rollback(ctx)

	if err := tx.Users().SetPassword(ctx, input.User.ID, hash); err != nil {
		logging.Error(ctx, s.log, err, userID)
		return Result{}, err
	}
	signedOut, err := tx.Sessions().DeleteOthers(ctx, input.User.ID, current)
	if err != nil {
		logging.Error(ctx, s.log, err, userID)
		return Result{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, userID)
		return Result{}, err
	}

	s.log.Info(ctx, "Password changed.", userID, logging.Entry("signedOutSessions", signedOut))
	return Result{SignedOutSessions: signedOut}, nil
}
