package loginwithemail

import (
	c "budgetsync/internal/core/domain/common"
	e "budgetsync/internal/core/domain/errors"
	ratelimiter "budgetsync/internal/core/domain/rate_limiter"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	loginwithemail "budgetsync/internal/core/services/log_in_with_email"
	"budgetsync/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// MsgInvalidCredentials is shared by unknown emails and wrong passwords.
const MsgInvalidCredentials = "invalid email or password"

type Handler struct {
	service services.Service[loginwithemail.Input, loginwithemail.Result]
}

func New(
	service services.Service[loginwithemail.Input, loginwithemail.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Result struct {
	Token string `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 1024)),
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
		loginwithemail.Input{Email: c.NewEmail(input.Email), Password: user.RawPassword(input.Password)},
	)
	switch {
	case err == nil:
		response.Render(rw, Result{Token: string(result.Token)}, http.StatusOK)
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		response.RenderRateLimitExceeded(rw)
	case errors.Is(err, user.ErrInvalidCredentials):
		response.RenderError(rw, MsgInvalidCredentials, http.StatusUnauthorized)
	default:
		response.RenderInternalError(rw)
	}
}
