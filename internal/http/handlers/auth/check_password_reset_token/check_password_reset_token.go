package checkpasswordresettoken

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	service "budgetsync/internal/core/services/check_password_reset_token"
	"budgetsync/internal/http/handlers/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const TOKEN_MAX_LEN = 1024

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Valid     bool      `json:"valid"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if len(token) > TOKEN_MAX_LEN {
		response.RenderError(rw, response.MsgResetLinkInvalid, http.StatusUnprocessableEntity)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Token: user.ResetToken(token)})
	if err != nil {
		if !response.RenderPasswordError(rw, err) {
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, Result{Valid: true, ExpiresAt: result.ExpiresAt}, http.StatusOK)
}
