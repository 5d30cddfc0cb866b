package response

import (
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/profile"
)

const MsgProfileNotFound = "profile is not filled in yet"

type Profile struct {
	FirstName                  string   `json:"first_name"`
	LastName                   string   `json:"last_name"`
	State                      string   `json:"state"`
	IncomeType                 string   `json:"income_type"`
	TaxWithholding             c.Amount `json:"tax_withholding"`
	RetirementContributionType string   `json:"retirement_contribution_type"`
	RetirementContribution     c.Amount `json:"retirement_contribution"`
	PayCycle                   string   `json:"pay_cycle"`
	BenefitDeductions          c.Amount `json:"benefit_deductions"`
}

func (p *Profile) FromDomainProfile(dp profile.Profile) {
	p.FirstName = dp.FirstName
	p.LastName = dp.LastName
	p.State = string(dp.State)
	p.IncomeType = string(dp.IncomeType)
	p.TaxWithholding = dp.TaxWithholding
	p.RetirementContributionType = string(dp.RetirementContributionType)
	p.RetirementContribution = dp.RetirementContribution
	p.PayCycle = string(dp.PayCycle)
	p.BenefitDeductions = dp.BenefitDeductions
}
