package profile

import (
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
)

type ID int64

// State is a two letter code of one of the 50 US states.
type State string

var States = []State{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

func (s State) IsValid() bool {
	for _, state := range States {
		if s == state {
			return true
		}
	}
	return false
}

type IncomeType string

const (
	IncomeSalary     IncomeType = "Salary"
	IncomeHourly     IncomeType = "Hourly"
	IncomeCommission IncomeType = "Commission"
)

var IncomeTypes = []IncomeType{IncomeSalary, IncomeHourly, IncomeCommission}

type ContributionType string

const (
	ContributionPercent ContributionType = "percent"
	ContributionFixed   ContributionType = "fixed"
)

var ContributionTypes = []ContributionType{ContributionPercent, ContributionFixed}

type PayCycle string

const (
	PayWeekly    PayCycle = "weekly"
	PayBiweekly  PayCycle = "biweekly"
	PayMonthly   PayCycle = "monthly"
	PayBimonthly PayCycle = "bimonthly"
)

var PayCycles = []PayCycle{PayWeekly, PayBiweekly, PayMonthly, PayBimonthly}

// Profile holds the payroll facts a budget starts from. A user has at most
// one profile.
type Profile struct {
	ID                         ID
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

func (p *Profile) Validate() error {
	if p.UserID == 0 {
		return e.NewInvalidStateError("user is not set for profile %d", p.ID)
	}
	if !p.State.IsValid() {
		return e.NewInvalidStateError("unknown state %q of profile %d", p.State, p.ID)
	}
	if p.RetirementContribution < 0 || p.BenefitDeductions < 0 {
		return e.NewInvalidStateError("negative deductions in profile %d", p.ID)
	}
	return nil
}
