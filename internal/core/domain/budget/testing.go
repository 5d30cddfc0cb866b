package budget

import (
	c "budgetsync/internal/core/domain/common"
	"budgetsync/internal/core/domain/user"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// FakeBudgetRepository keeps names unique per user the way the database
// index does.
type FakeBudgetRepository struct {
	Budgets     []Budget
	ReturnError bool
	lastItemID  ItemID
	lastID      ID
	lock        sync.Mutex
}

func NewFakeBudgetRepository() *FakeBudgetRepository {
	return &FakeBudgetRepository{Budgets: make([]Budget, 0, 10)}
}

func (r *FakeBudgetRepository) Create(ctx context.Context, input CreateBudgetInput) (b Budget, err error) {
	if r.ReturnError {
		return b, fmt.Errorf("could not create budget %q", input.Name)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.nameTaken(input.UserID, input.Name, 0) {
		return b, ErrBudgetNameAlreadyExists
	}

	r.lastID++
	b = Budget{
		ID:                     r.lastID,
		UserID:                 input.UserID,
		ProfileID:              input.ProfileID,
		Name:                   input.Name,
		GrossIncome:            input.GrossIncome,
		TaxWithholding:         input.TaxWithholding,
		RetirementContribution: input.RetirementContribution,
		BenefitDeductions:      input.BenefitDeductions,
		OtherIncomeSources:     append([]IncomeSource(nil), input.OtherIncomeSources...),
		CreatedAt:              input.CreatedAt,
	}
	b.Items = r.newItems(b.ID, input.Items)
	r.Budgets = append(r.Budgets, b)
	return b, nil
}

func (r *FakeBudgetRepository) GetByID(ctx context.Context, id ID) (b Budget, err error) {
	if r.ReturnError {
		return b, fmt.Errorf("could not get budget %v", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	i, ok := r.find(id)
	if !ok {
		return b, ErrBudgetDoesNotExist
	}
	return r.Budgets[i], nil
}

func (r *FakeBudgetRepository) GetByIDWithLock(ctx context.Context, id ID) (Budget, error) {
	return r.GetByID(ctx, id)
}

func (r *FakeBudgetRepository) ListByUser(ctx context.Context, userID user.ID) ([]Budget, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list budgets of user %v", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	budgets := make([]Budget, 0)
	for _, b := range r.Budgets {
		if b.UserID == userID {
			b.Items = nil
			budgets = append(budgets, b)
		}
	}
	sort.SliceStable(budgets, func(i, j int) bool { return budgets[i].ID > budgets[j].ID })
	return budgets, nil
}

func (r *FakeBudgetRepository) Update(ctx context.Context, input UpdateBudgetInput) (b Budget, err error) {
	if r.ReturnError {
		return b, fmt.Errorf("could not update budget %v", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	i, ok := r.find(input.ID)
	if !ok {
		return b, ErrBudgetDoesNotExist
	}
	if r.nameTaken(r.Budgets[i].UserID, input.Name, input.ID) {
		return b, ErrBudgetNameAlreadyExists
	}
	b = r.Budgets[i]
	b.Name = input.Name
	b.GrossIncome = input.GrossIncome
	b.RetirementContribution = input.RetirementContribution
	b.BenefitDeductions = input.BenefitDeductions
	b.UpdatedAt = c.NewOptional(input.UpdatedAt, true)
	r.Budgets[i] = b
	return b, nil
}

func (r *FakeBudgetRepository) ReplaceItems(
	ctx context.Context,
	id ID,
	items []ItemInput,
	updatedAt time.Time,
) ([]Item, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not replace items of budget %v", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	i, ok := r.find(id)
	if !ok {
		return nil, ErrBudgetDoesNotExist
	}
	r.Budgets[i].Items = r.newItems(id, items)
	r.Budgets[i].UpdatedAt = c.NewOptional(updatedAt, true)
	return r.Budgets[i].Items, nil
}

func (r *FakeBudgetRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete budget %v", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	i, ok := r.find(id)
	if !ok {
		return ErrBudgetDoesNotExist
	}
	r.Budgets = append(r.Budgets[:i:i], r.Budgets[i+1:]...)
	return nil
}

func (r *FakeBudgetRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Budgets)
}

func (r *FakeBudgetRepository) Snapshot() []Budget {
	r.lock.Lock()
	defer r.lock.Unlock()
	budgets := make([]Budget, len(r.Budgets))
	copy(budgets, r.Budgets)
	return budgets
}

func (r *FakeBudgetRepository) Restore(budgets []Budget) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Budgets = budgets
}

func (r *FakeBudgetRepository) find(id ID) (int, bool) {
	for i, b := range r.Budgets {
		if b.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (r *FakeBudgetRepository) nameTaken(userID user.ID, name string, except ID) bool {
	for _, b := range r.Budgets {
		if b.UserID == userID && b.Name == name && b.ID != except {
			return true
		}
	}
	return false
}

func (r *FakeBudgetRepository) newItems(budgetID ID, inputs []ItemInput) []Item {
	items := make([]Item, 0, len(inputs))
	for _, input := range inputs {
		r.lastItemID++
		items = append(items, Item{
			ID:               r.lastItemID,
			BudgetID:         budgetID,
			Category:         input.Category,
			Name:             input.Name,
			MinimumPayment:   input.MinimumPayment,
			PreferredPayment: input.PreferredPayment,
		})
	}
	return items
}
