package budget

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/db"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const NAME_CONSTRAINT_NAME = "budget_user_id_name_idx"

const budgetColumns = `id, user_id, profile_id, name, gross_income, tax_withholding,
	retirement_contribution, benefit_deductions, other_income_sources, created_at, updated_at`

const itemColumns = `id, budget_id, category, name, minimum_payment, preferred_payment`

type PgxBudgetRepository struct {
	db db.DBTX
}

func NewPgxBudgetRepository(db db.DBTX) *PgxBudgetRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxBudgetRepository{db: db}
}

func (r *PgxBudgetRepository) Create(ctx context.Context, input budget.CreateBudgetInput) (b budget.Budget, err error) {
	sources, err := encodeIncomeSources(input.OtherIncomeSources)
	if err != nil {
		return b, err
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO budget (
			user_id, profile_id, name, gross_income, tax_withholding,
			retirement_contribution, benefit_deductions, other_income_sources, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+budgetColumns,
		int64(input.UserID),
		int64(input.ProfileID),
		input.Name,
		int64(input.GrossIncome),
		int64(input.TaxWithholding),
		int64(input.RetirementContribution),
		int64(input.BenefitDeductions),
		sources,
		input.CreatedAt,
	)
	b, err = scanBudget(row)
	if constraint, ok := db.UniqueViolation(err); ok && constraint == NAME_CONSTRAINT_NAME {
		return b, budget.ErrBudgetNameAlreadyExists
	}
	if err != nil {
		return b, err
	}

	b.Items, err = r.insertItems(ctx, b.ID, input.Items)
	if err != nil {
		return b, err
	}
	return b, b.Validate()
}

func (r *PgxBudgetRepository) GetByID(ctx context.Context, id budget.ID) (budget.Budget, error) {
	row := r.db.QueryRow(ctx, `SELECT `+budgetColumns+` FROM budget WHERE id = $1`, int64(id))
	return r.withItems(ctx, row)
}

func (r *PgxBudgetRepository) GetByIDWithLock(ctx context.Context, id budget.ID) (budget.Budget, error) {
	row := r.db.QueryRow(ctx, `SELECT `+budgetColumns+` FROM budget WHERE id = $1 FOR UPDATE`, int64(id))
	return r.withItems(ctx, row)
}

func (r *PgxBudgetRepository) ListByUser(ctx context.Context, userID user.ID) ([]budget.Budget, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+budgetColumns+` FROM budget WHERE user_id = $1 ORDER BY id DESC`,
		int64(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := make([]budget.Budget, 0)
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		if err := b.Validate(); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func (r *PgxBudgetRepository) Update(ctx context.Context, input budget.UpdateBudgetInput) (budget.Budget, error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE budget SET
			name = $2,
			gross_income = $3,
			retirement_contribution = $4,
			benefit_deductions = $5,
			updated_at = $6
		WHERE id = $1
		RETURNING `+budgetColumns,
		int64(input.ID),
		input.Name,
		int64(input.GrossIncome),
		int64(input.RetirementContribution),
		int64(input.BenefitDeductions),
		input.UpdatedAt,
	)
	b, err := r.withItems(ctx, row)
	if constraint, ok := db.UniqueViolation(err); ok && constraint == NAME_CONSTRAINT_NAME {
		return b, budget.ErrBudgetNameAlreadyExists
	}
	return b, err
}

func (r *PgxBudgetRepository) ReplaceItems(
	ctx context.Context,
	id budget.ID,
	items []budget.ItemInput,
	updatedAt time.Time,
) ([]budget.Item, error) {
	tag, err := r.db.Exec(ctx, `UPDATE budget SET updated_at = $2 WHERE id = $1`, int64(id), updatedAt)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, budget.ErrBudgetDoesNotExist
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM budget_item WHERE budget_id = $1`, int64(id)); err != nil {
		return nil, err
	}
	return r.insertItems(ctx, id, items)
}

func (r *PgxBudgetRepository) Delete(ctx context.Context, id budget.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM budget WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return budget.ErrBudgetDoesNotExist
	}
	return nil
}

func (r *PgxBudgetRepository) insertItems(ctx context.Context, id budget.ID, inputs []budget.ItemInput) ([]budget.Item, error) {
	items := make([]budget.Item, 0, len(inputs))
	for _, input := range inputs {
		row := r.db.QueryRow(
			ctx,
			`INSERT INTO budget_item (budget_id, category, name, minimum_payment, preferred_payment)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+itemColumns,
			int64(id),
			input.Category,
			input.Name,
			int64(input.MinimumPayment),
			int64(input.PreferredPayment),
		)
		item, err := scanItem(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PgxBudgetRepository) withItems(ctx context.Context, row pgx.Row) (b budget.Budget, err error) {
	b, err = scanBudget(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return b, budget.ErrBudgetDoesNotExist
	}
	if err != nil {
		return b, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+itemColumns+` FROM budget_item WHERE budget_id = $1 ORDER BY id`, int64(b.ID))
	if err != nil {
		return b, err
	}
	defer rows.Close()
	b.Items = make([]budget.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return b, err
		}
		b.Items = append(b.Items, item)
	}
	if err := rows.Err(); err != nil {
		return b, err
	}
	return b, b.Validate()
}

func scanBudget(row pgx.Row) (b budget.Budget, err error) {
	var (
		id                     int64
		userID                 int64
		profileID              int64
		grossIncome            int64
		taxWithholding         int64
		retirementContribution int64
		benefitDeductions      int64
		sources                pgtype.JSONB
		createdAt              time.Time
		updatedAt              *time.Time
	)
	err = row.Scan(
		&id,
		&userID,
		&profileID,
		&b.Name,
		&grossIncome,
		&taxWithholding,
		&retirementContribution,
		&benefitDeductions,
		&sources,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return b, err
	}

	b.ID = budget.ID(id)
	b.UserID = user.ID(userID)
	b.ProfileID = profile.ID(profileID)
	b.GrossIncome = c.Amount(grossIncome)
	b.TaxWithholding = c.Amount(taxWithholding)
	b.RetirementContribution = c.Amount(retirementContribution)
	b.BenefitDeductions = c.Amount(benefitDeductions)
	b.CreatedAt = createdAt.UTC()
	if updatedAt != nil {
		b.UpdatedAt = c.NewOptional(updatedAt.UTC(), true)
	}
	b.OtherIncomeSources, err = decodeIncomeSources(sources)
	return b, err
}

func scanItem(row pgx.Row) (item budget.Item, err error) {
	var (
		id               int64
		budgetID         int64
		minimumPayment   int64
		preferredPayment int64
	)
	if err := row.Scan(&id, &budgetID, &item.Category, &item.Name, &minimumPayment, &preferredPayment); err != nil {
		return item, err
	}
	item.ID = budget.ItemID(id)
	item.BudgetID = budget.ID(budgetID)
	item.MinimumPayment = c.Amount(minimumPayment)
	item.PreferredPayment = c.Amount(preferredPayment)
	return item, nil
}

type incomeSourceRecord struct {
	Category  string   `json:"category"`
	Name      string   `json:"name"`
	Amount    c.Amount `json:"amount"`
	Frequency string   `json:"frequency"`
}

func encodeIncomeSources(sources []budget.IncomeSource) (encoded pgtype.JSONB, err error) {
	if len(sources) == 0 {
		return pgtype.JSONB{Status: pgtype.Null}, nil
	}
	records := make([]incomeSourceRecord, 0, len(sources))
	for _, s := range sources {
		records = append(records, incomeSourceRecord{
			Category:  string(s.Category),
			Name:      s.Name,
			Amount:    s.Amount,
			Frequency: string(s.Frequency),
		})
	}
	if err := encoded.Set(records); err != nil {
		return encoded, fmt.Errorf("could not encode income sources: %w", err)
	}
	return encoded, nil
}

func decodeIncomeSources(encoded pgtype.JSONB) ([]budget.IncomeSource, error) {
	var records []incomeSourceRecord
	if err := encoded.AssignTo(&records); err != nil {
		return nil, fmt.Errorf("could not decode income sources: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	sources := make([]budget.IncomeSource, 0, len(records))
	for _, r := range records {
		sources = append(sources, budget.IncomeSource{
			Category:  budget.IncomeCategory(r.Category),
			Name:      r.Name,
			Amount:    r.Amount,
			Frequency: budget.Frequency(r.Frequency),
		})
	}
	return sources, nil
}
