package updateprofile

import (
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"budgetsync/internal/core/services/auth"
	"context"
)

// Input replaces the whole profile. The first update creates it.
type Input struct {
	UserID                     user.ID
	FirstName                  string
	LastName                   string
	State                      profile.State
	IncomeType                 profile.IncomeType
	TaxWithholding             c.Amount
	RetirementContributionType profile.ContributionType
	RetirementContribution     c.Amount
	PayCycle                   profile.PayCycle
	BenefitDeductions          c.Amount
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
	saved, err := s.profileRepository.Save(ctx, profile.SaveProfileInput{
		UserID:                     input.UserID,
		FirstName:                  input.FirstName,
		LastName:                   input.LastName,
		State:                      input.State,
		IncomeType:                 input.IncomeType,
		TaxWithholding:             input.TaxWithholding,
		RetirementContributionType: input.RetirementContributionType,
		RetirementContribution:     input.RetirementContribution,
		PayCycle:                   input.PayCycle,
		BenefitDeductions:          input.BenefitDeductions,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Profile successfully updated.",
		logging.Entry("userID", input.UserID),
		logging.Entry("profileID", saved.ID),
	)
	result.Profile = saved
	return result, nil
}
