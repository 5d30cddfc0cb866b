package deletebudget

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	service "budgetsync/internal/core/services/delete_budget"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	id, ok := budgets.ParseBudgetID(r)
	if !ok {
		response.RenderError(rw, response.MsgBudgetNotFound, http.StatusNotFound)
		return
	}

	_, err := h.service.Run(r.Context(), service.Input{BudgetID: id})
	switch {
	case err == nil:
		response.RenderMessage(rw, "budget deleted", http.StatusOK)
	case errors.Is(err, user.ErrUserDoesNotExist):
		response.RenderUnauthorized(rw)
	default:
		if !response.RenderBudgetError(rw, err) {
			response.RenderInternalError(rw)
		}
	}
}
