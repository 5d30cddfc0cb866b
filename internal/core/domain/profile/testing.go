package profile

import (
	"budgetsync/internal/core/domain/user"
	"context"
	"fmt"
	"sync"
)

type FakeProfileRepository struct {
	Profiles    []Profile
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeProfileRepository() *FakeProfileRepository {
	return &FakeProfileRepository{Profiles: make([]Profile, 0, 10)}
}

func (r *FakeProfileRepository) GetByUserID(ctx context.Context, userID user.ID) (p Profile, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not get profile of user %v", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Profiles {
		if existing.UserID == userID {
			return existing, nil
		}
	}
	return p, ErrProfileDoesNotExist
}

func (r *FakeProfileRepository) Save(ctx context.Context, input SaveProfileInput) (p Profile, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not save profile of user %v", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	p = Profile{
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
	}
	for i, existing := range r.Profiles {
		if existing.UserID == input.UserID {
			p.ID = existing.ID
			r.Profiles[i] = p
			return p, nil
		}
	}
	p.ID = ID(len(r.Profiles) + 1)
	r.Profiles = append(r.Profiles, p)
	return p, nil
}

func (r *FakeProfileRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Profiles)
}

func (r *FakeProfileRepository) Snapshot() []Profile {
	r.lock.Lock()
	defer r.lock.Unlock()
	profiles := make([]Profile, len(r.Profiles))
	copy(profiles, r.Profiles)
	return profiles
}

func (r *FakeProfileRepository) Restore(profiles []Profile) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Profiles = profiles
}
