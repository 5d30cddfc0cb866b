package profile

import (
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
)

const profileColumns = `id, user_id, first_name, last_name, state, income_type, tax_withholding,
	retirement_contribution_type, retirement_contribution, pay_cycle, benefit_deductions`

type PgxProfileRepository struct {
	db db.DBTX
}

func NewPgxProfileRepository(db db.DBTX) *PgxProfileRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxProfileRepository{db: db}
}

func (r *PgxProfileRepository) GetByUserID(ctx context.Context, userID user.ID) (p profile.Profile, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profile WHERE user_id = $1`, int64(userID))
	return decodeProfileRow(row)
}

func (r *PgxProfileRepository) Save(ctx context.Context, input profile.SaveProfileInput) (p profile.Profile, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO profile (
			user_id, first_name, last_name, state, income_type, tax_withholding,
			retirement_contribution_type, retirement_contribution, pay_cycle, benefit_deductions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			state = EXCLUDED.state,
			income_type = EXCLUDED.income_type,
			tax_withholding = EXCLUDED.tax_withholding,
			retirement_contribution_type = EXCLUDED.retirement_contribution_type,
			retirement_contribution = EXCLUDED.retirement_contribution,
			pay_cycle = EXCLUDED.pay_cycle,
			benefit_deductions = EXCLUDED.benefit_deductions
		RETURNING `+profileColumns,
		int64(input.UserID),
		input.FirstName,
		input.LastName,
		string(input.State),
		string(input.IncomeType),
		int64(input.TaxWithholding),
		string(input.RetirementContributionType),
		int64(input.RetirementContribution),
		string(input.PayCycle),
		int64(input.BenefitDeductions),
	)
	return decodeProfileRow(row)
}

func decodeProfileRow(row pgx.Row) (p profile.Profile, err error) {
	var (
		id                         int64
		userID                     int64
		state                      string
		incomeType                 string
		taxWithholding             int64
		retirementContributionType string
		retirementContribution     int64
		payCycle                   string
		benefitDeductions          int64
	)
	err = row.Scan(
		&id,
		&userID,
		&p.FirstName,
		&p.LastName,
		&state,
		&incomeType,
		&taxWithholding,
		&retirementContributionType,
		&retirementContribution,
		&payCycle,
		&benefitDeductions,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, profile.ErrProfileDoesNotExist
	}
	if err != nil {
		return p, err
	}

	p.ID = profile.ID(id)
	p.UserID = user.ID(userID)
	p.State = profile.State(state)
	p.IncomeType = profile.IncomeType(incomeType)
	p.TaxWithholding = c.Amount(taxWithholding)
	p.RetirementContributionType = profile.ContributionType(retirementContributionType)
	p.RetirementContribution = c.Amount(retirementContribution)
	p.PayCycle = profile.PayCycle(payCycle)
	p.BenefitDeductions = c.Amount(benefitDeductions)
	return p, p.Validate()
}
