package budget

import (
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"time"
)

const (
	MaxNameLength     = 100
	MaxItemTextLength = 50
)

type ID int64

type ItemID int64

type IncomeCategory string

var IncomeCategories = []IncomeCategory{
	"rental", "investment", "business", "side_job", "royalties", "social_security", "pension", "other",
}

type Frequency string

var Frequencies = []Frequency{"weekly", "biweekly", "monthly", "bimonthly", "annually"}

// IncomeSource is income on top of the gross income of a budget.
type IncomeSource struct {
	Category  IncomeCategory
	Name      string
	Amount    c.Amount
	Frequency Frequency
}

// Item is a planned expense of a budget.
type Item struct {
	ID               ItemID
	BudgetID         ID
	Category         string
	Name             string
	MinimumPayment   c.Amount
	PreferredPayment c.Amount
}

type Budget struct {
	ID                     ID
	UserID                 user.ID
	ProfileID              profile.ID
	Name                   string
	GrossIncome            c.Amount
	TaxWithholding         c.Amount
	RetirementContribution c.Amount
	BenefitDeductions      c.Amount
	OtherIncomeSources     []IncomeSource
	Items                  []Item
	CreatedAt              time.Time
	UpdatedAt              c.Optional[time.Time]
}

func (b *Budget) IsOwnedBy(userID user.ID) bool {
	return b.UserID == userID
}

func (b *Budget) Validate() error {
	if b.UserID == 0 {
		return e.NewInvalidStateError("user is not set for budget %d", b.ID)
	}
	if b.Name == "" {
		return e.NewInvalidStateError("name is not set for budget %d", b.ID)
	}
	for _, item := range b.Items {
		if item.BudgetID != b.ID {
			return e.NewInvalidStateError("item %d does not belong to budget %d", item.ID, b.ID)
		}
	}
	return nil
}
