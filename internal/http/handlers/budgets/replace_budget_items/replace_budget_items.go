package replacebudgetitems

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	service "budgetsync/internal/core/services/replace_budget_items"
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
	Items []budgets.Item `json:"items"`
}

type Result struct {
	Items []response.BudgetItem `json:"items"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Items, validation.Length(0, budgets.MaxItems)),
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
		service.Input{BudgetID: id, Items: budgets.ToDomainItems(input.Items)},
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

	response.Render(rw, Result{Items: response.NewBudgetItems(result.Items)}, http.StatusOK)
}
