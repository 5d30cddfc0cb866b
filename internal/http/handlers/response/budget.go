package response

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
	"errors"
	"net/http"
	"time"
)

const (
	MsgBudgetNotFound     = "budget not found"
	MsgBudgetForbidden    = "you do not have permission to access this budget"
	MsgBudgetNameTaken    = "a budget with this name already exists"
	MsgBudgetNeedsProfile = "please complete your profile before creating a budget"
)

type IncomeSource struct {
	Category  string   `json:"category"`
	Name      string   `json:"name"`
	Amount    c.Amount `json:"amount"`
	Frequency string   `json:"frequency"`
}

type BudgetItem struct {
	ID               int64    `json:"id"`
	Category         string   `json:"category"`
	Name             string   `json:"name"`
	MinimumPayment   c.Amount `json:"minimum_payment"`
	PreferredPayment c.Amount `json:"preferred_payment"`
}

func (i *BudgetItem) FromDomainItem(di budget.Item) {
	i.ID = int64(di.ID)
	i.Category = di.Category
	i.Name = di.Name
	i.MinimumPayment = di.MinimumPayment
	i.PreferredPayment = di.PreferredPayment
}

func NewBudgetItems(items []budget.Item) []BudgetItem {
	result := make([]BudgetItem, 0, len(items))
	for _, di := range items {
		item := BudgetItem{}
		item.FromDomainItem(di)
		result = append(result, item)
	}
	return result
}

type Budget struct {
	ID                     int64          `json:"id"`
	Name                   string         `json:"name"`
	GrossIncome            c.Amount       `json:"gross_income"`
	TaxWithholding         c.Amount       `json:"tax_withholding"`
	RetirementContribution c.Amount       `json:"retirement_contribution"`
	BenefitDeductions      c.Amount       `json:"benefit_deductions"`
	OtherIncomeSources     []IncomeSource `json:"other_income_sources"`
	Items                  []BudgetItem   `json:"items,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              *time.Time     `json:"updated_at"`
}

func (b *Budget) FromDomainBudget(bd budget.Budget) {
	b.ID = int64(bd.ID)
	b.Name = bd.Name
	b.GrossIncome = bd.GrossIncome
	b.TaxWithholding = bd.TaxWithholding
	b.RetirementContribution = bd.RetirementContribution
	b.BenefitDeductions = bd.BenefitDeductions
	b.OtherIncomeSources = make([]IncomeSource, 0, len(bd.OtherIncomeSources))
	for _, s := range bd.OtherIncomeSources {
		b.OtherIncomeSources = append(b.OtherIncomeSources, IncomeSource{
			Category:  string(s.Category),
			Name:      s.Name,
			Amount:    s.Amount,
			Frequency: string(s.Frequency),
		})
	}
	if bd.Items != nil {
		b.Items = NewBudgetItems(bd.Items)
	}
	b.CreatedAt = bd.CreatedAt
	if updatedAt, ok := bd.UpdatedAt.Get(); ok {
		b.UpdatedAt = &updatedAt
	}
}

// RenderBudgetError renders the errors of budget operations. It returns
// false if err is none of them.
func RenderBudgetError(rw http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, budget.ErrBudgetDoesNotExist):
		RenderError(rw, MsgBudgetNotFound, http.StatusNotFound)
	case errors.Is(err, budget.ErrBudgetPermission):
		RenderError(rw, MsgBudgetForbidden, http.StatusForbidden)
	case errors.Is(err, budget.ErrBudgetNameAlreadyExists):
		RenderError(rw, MsgBudgetNameTaken, http.StatusConflict)
	case errors.Is(err, budget.ErrProfileRequired):
		RenderError(rw, MsgBudgetNeedsProfile, http.StatusUnprocessableEntity)
	default:
		return false
	}
	return true
}
