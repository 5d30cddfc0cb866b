package logout

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	logout "budgetsync/internal/core/services/log_out"
	"budgetsync/internal/http/handlers/auth"
	"budgetsync/internal/http/handlers/response"
	"errors"
	"net/http"
)

type Handler struct {
	service services.Service[logout.Input, logout.Result]
}

func New(
	service services.Service[logout.Input, logout.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

// ServeHTTP ends the session named by the bearer token. Logging out twice
// with the same token is reported as unauthorized.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}

	_, err := h.service.Run(r.Context(), logout.Input{Token: token})
	switch {
	case err == nil:
		response.RenderMessage(rw, "logged out", http.StatusOK)
	case errors.Is(err, user.ErrSessionDoesNotExist):
		response.RenderUnauthorized(rw)
	default:
		response.RenderInternalError(rw)
	}
}
