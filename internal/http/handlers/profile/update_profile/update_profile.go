package updateprofile

import (
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	service "budgetsync/internal/core/services/update_profile"
	"budgetsync/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
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

type Result struct {
	Profile response.Profile `json:"profile"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&i.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&i.State, validation.Required, validation.In(oneOf(profile.States)...)),
		validation.Field(&i.IncomeType, validation.Required, validation.In(oneOf(profile.IncomeTypes)...)),
		validation.Field(&i.TaxWithholding, validation.Min(0)),
		validation.Field(
			&i.RetirementContributionType,
			validation.Required,
			validation.In(oneOf(profile.ContributionTypes)...),
		),
		validation.Field(&i.RetirementContribution, validation.Min(0)),
		validation.Field(&i.PayCycle, validation.Required, validation.In(oneOf(profile.PayCycles)...)),
		validation.Field(&i.BenefitDeductions, validation.Min(0)),
	)
}

func oneOf[T ~string](values []T) []interface{} {
	allowed := make([]interface{}, 0, len(values))
	for _, v := range values {
		allowed = append(allowed, string(v))
	}
	return allowed
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequestData(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			FirstName:                  input.FirstName,
			LastName:                   input.LastName,
			State:                      profile.State(input.State),
			IncomeType:                 profile.IncomeType(input.IncomeType),
			TaxWithholding:             input.TaxWithholding,
			RetirementContributionType: profile.ContributionType(input.RetirementContributionType),
			RetirementContribution:     input.RetirementContribution,
			PayCycle:                   profile.PayCycle(input.PayCycle),
			BenefitDeductions:          input.BenefitDeductions,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	p := response.Profile{}
	p.FromDomainProfile(result.Profile)
	response.Render(rw, Result{Profile: p}, http.StatusOK)
}
