package budgets

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

const MaxItems = 200

// ParseBudgetID reads the {budgetID} URL parameter.
func ParseBudgetID(r *http.Request) (budget.ID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "budgetID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return budget.ID(id), true
}

type Item struct {
	Category         string   `json:"category"`
	Name             string   `json:"name"`
	MinimumPayment   c.Amount `json:"minimum_payment"`
	PreferredPayment c.Amount `json:"preferred_payment"`
}

func (i Item) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Category, validation.Required, validation.Length(1, budget.MaxItemTextLength)),
		validation.Field(&i.Name, validation.Required, validation.Length(1, budget.MaxItemTextLength)),
		validation.Field(&i.MinimumPayment, validation.Min(0)),
		validation.Field(&i.PreferredPayment, validation.Min(0)),
	)
}

func ToDomainItems(items []Item) []budget.ItemInput {
	result := make([]budget.ItemInput, 0, len(items))
	for _, i := range items {
		result = append(result, budget.ItemInput{
			Category:         i.Category,
			Name:             i.Name,
			MinimumPayment:   i.MinimumPayment,
			PreferredPayment: i.PreferredPayment,
		})
	}
	return result
}

type IncomeSource struct {
	Category  string   `json:"category"`
	Name      string   `json:"name"`
	Amount    c.Amount `json:"amount"`
	Frequency string   `json:"frequency"`
}

func (s IncomeSource) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Category, validation.Required, validation.In(oneOf(budget.IncomeCategories)...)),
		validation.Field(&s.Name, validation.Required, validation.Length(1, budget.MaxItemTextLength)),
		validation.Field(&s.Amount, validation.Required, validation.Min(0)),
		validation.Field(&s.Frequency, validation.Required, validation.In(oneOf(budget.Frequencies)...)),
	)
}

func ToDomainIncomeSources(sources []IncomeSource) []budget.IncomeSource {
	result := make([]budget.IncomeSource, 0, len(sources))
	for _, s := range sources {
		result = append(result, budget.IncomeSource{
			Category:  budget.IncomeCategory(s.Category),
			Name:      s.Name,
			Amount:    s.Amount,
			Frequency: budget.Frequency(s.Frequency),
		})
	}
	return result
}

func oneOf[T ~string](values []T) []interface{} {
	allowed := make([]interface{}, 0, len(values))
	for _, v := range values {
		allowed = append(allowed, string(v))
	}
	return allowed
}
