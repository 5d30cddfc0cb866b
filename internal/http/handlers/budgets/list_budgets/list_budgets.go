package listbudgets

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	service "budgetsync/internal/core/services/list_budgets"
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
	Budgets []response.Budget `json:"budgets"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	budgets := make([]response.Budget, 0, len(result.Budgets))
	for _, domainBudget := range result.Budgets {
		b := response.Budget{}
		b.FromDomainBudget(domainBudget)
		budgets = append(budgets, b)
	}
	response.Render(rw, Result{Budgets: budgets}, http.StatusOK)
}
