package updatebudget

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	service "budgetsync/internal/core/services/update_budget"
	"budgetsync/internal/http/handlers/budgets"
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
	Name                   string   `json:"name"`
	GrossIncome            c.Amount `json:"gross_income"`
	RetirementContribution c.Amount `json:"retirement_contribution"`
	BenefitDeductions      c.Amount `json:"benefit_deductions"`
}

type Result struct {
	Budget response.Budget `json:"budget"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, budget.MaxNameLength)),
		validation.Field(&i.GrossIncome, validation.Min(0)),
		validation.Field(&i.RetirementContribution, validation.Min(0)),
		validation.Field(&i.BenefitDeductions, validation.Min(0)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	id, ok := budgets.ParseBudgetID(r)
	if !ok {
		response.RenderError(rw, response.MsgBudgetNotFound, http.StatusNotFound)
		return
	}
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
			BudgetID:               id,
			Name:                   input.Name,
			GrossIncome:            input.GrossIncome,
			RetirementContribution: input.RetirementContribution,
			BenefitDeductions:      input.BenefitDeductions,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			if !response.RenderBudgetError(rw, err) {
				response.RenderInternalError(rw)
			}
		}
		return
	}

	b := response.Budget{}
	b.FromDomainBudget(result.Budget)
	response.Render(rw, Result{Budget: b}, http.StatusOK)
}
