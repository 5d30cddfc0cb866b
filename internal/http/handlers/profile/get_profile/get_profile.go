package getprofile

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/profile"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	service "budgetsync/internal/core/services/get_profile"
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
	Profile response.Profile `json:"profile"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	switch {
	case err == nil:
	case errors.Is(err, user.ErrUserDoesNotExist):
		response.RenderUnauthorized(rw)
		return
	case errors.Is(err, profile.ErrProfileDoesNotExist):
		response.RenderError(rw, response.MsgProfileNotFound, http.StatusNotFound)
		return
	default:
		response.RenderInternalError(rw)
		return
	}

	p := response.Profile{}
	p.FromDomainProfile(result.Profile)
	response.Render(rw, Result{Profile: p}, http.StatusOK)
}
