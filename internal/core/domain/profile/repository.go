package profile

import (
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/user"
	"context"
)

type SaveProfileInput struct {
	UserID                     user.ID
	FirstName                  string
	LastName                   string
	State                      State
	IncomeType                 IncomeType
	TaxWithholding             c.Amount
	RetirementContributionType ContributionType
	RetirementContribution     c.Amount
	PayCycle                   PayCycle
	BenefitDeductions          c.Amount
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID user.ID) (Profile, error)
	// Save creates the profile of the user or overwrites the existing one.
	Save(ctx context.Context, input SaveProfileInput) (Profile, error)
}
