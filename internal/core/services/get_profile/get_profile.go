package getprofile

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"budgetsync/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Profile profile.Profile
}

type service struct {
	log               logging.Logger
	profileRepository profile.ProfileRepository
}

func New(
	log logging.Logger,
	profileRepository profile.ProfileRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if profileRepository == nil {
		panic(e.NewNilArgumentError("profileRepository"))
	}
	return &service{log: log, profileRepository: profileRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	p, err := s.profileRepository.GetByUserID(ctx, input.UserID)
	switch {
	case err == nil:
		result.Profile = p
		return result, nil
	case errors.Is(err, profile.ErrProfileDoesNotExist):
		s.log.Info(ctx, "Profile is not filled in yet.", logging.Entry("userID", input.UserID))
	default:
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
	}
	return result, err
}
