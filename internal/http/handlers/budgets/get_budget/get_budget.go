package getbudget

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	service "budgetsync/internal/core/services/get_budget"
	"budgetsync/internal/http/handlers/budgets"
	"budgetsync/internal/http/handlers/response"
	"errors"
	"net/http"
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

type Result struct {
	Budget response.Budget `json:"budget"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	id, ok := budgets.ParseBudgetID(r)
	if !ok {
		response.RenderError(rw, response.MsgBudgetNotFound, http.StatusNotFound)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{BudgetID: id})
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
