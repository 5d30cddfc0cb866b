package createbudget

import (
	"budgetsync/internal/core/domain/budget"
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	service "budgetsync/internal/core/services/create_budget"
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
	Name               string                 `json:"name"`
	GrossIncome        c.Amount               `json:"gross_income"`
	OtherIncomeSources []budgets.IncomeSource `json:"other_income_sources"`
	Items              []budgets.Item         `json:"items"`
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
		validation.Field(&i.OtherIncomeSources, validation.Length(0, budgets.MaxItems)),
		validation.Field(&i.Items, validation.Length(0, budgets.MaxItems)),
	)
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
			Name:               input.Name,
			GrossIncome:        input.GrossIncome,
			OtherIncomeSources: budgets.ToDomainIncomeSources(input.OtherIncomeSources),
			Items:              budgets.ToDomainItems(input.Items),
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
	response.Render(rw, Result{Budget: b}, http.StatusCreated)
}
