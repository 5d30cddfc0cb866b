package loginwithemail

import (
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Email    c.Email
	Password user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "log-in-with-email::" + string(i.Email)
}

type Result struct {
	Token user.SessionToken
}

type service struct {
	log                   logging.Logger
	userRepository        user.UserRepository
	sessionRepository     user.SessionRepository
	passwordHasher        user.PasswordHasher
	sessionTokenGenerator user.SessionTokenGenerator
	now                   func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	sessionRepository user.SessionRepository,
	passwordHasher user.PasswordHasher,
	sessionTokenGenerator user.SessionTokenGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if sessionTokenGenerator == nil {
		panic(e.NewNilArgumentError("sessionTokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                   log,
		userRepository:        userRepository,
		sessionRepository:     sessionRepository,
		passwordHasher:        passwordHasher,
		sessionTokenGenerator: sessionTokenGenerator,
		now:                   now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.authenticate(ctx, c.NewEmail(string(input.Email)), input.Password)
	if err != nil {
		return result, err
	}

	token := s.sessionTokenGenerator.GenerateSessionToken()
	err = s.sessionRepository.Create(ctx, user.CreateSessionInput{UserID: u.ID, Token: token, CreatedAt: s.now()})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logging.Error(ctx, s.log, err, logging.Entry("userId", u.ID))
		}
		return result, err
	}

	s.log.Info(ctx, "User logged in.", logging.Entry("userId", u.ID))
	return Result{Token: token}, nil
}

// authenticate checks the password with the hasher's own comparison. An
// unknown email still costs one hash computation.
func (s *service) authenticate(ctx context.Context, email c.Email, password user.RawPassword) (u user.User, err error) {
	u, err = s.userRepository.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrUserDoesNotExist):
		s.passwordHasher.HashPassword(password)
		s.log.Info(ctx, "Log in attempt with unknown email.")
		return u, user.ErrInvalidCredentials
	case errors.Is(err, context.Canceled):
		return u, err
	case err != nil:
		logging.Error(ctx, s.log, err, logging.Entry("email", email.Masked()))
		return u, err
	}

	if !s.passwordHasher.ValidatePassword(password, u.PasswordHash) {
		s.log.Info(ctx, "Log in attempt with invalid password.", logging.Entry("userId", u.ID))
		return u, user.ErrInvalidCredentials
	}
	return u, nil
}
