package resetpassword

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	resetpassword "budgetsync/internal/core/services/reset_password"
	"budgetsync/internal/http/handlers/response"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

const TOKEN_MAX_LEN = 1024

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

// Input leaves the password policy to the service so that token errors are
// reported before policy errors.
type Input struct {
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Password, validation.Length(0, 1024)),
		validation.Field(&i.PasswordConfirmation, validation.Length(0, 1024)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if len(token) > TOKEN_MAX_LEN {
		response.RenderError(rw, response.MsgResetLinkInvalid, http.StatusUnprocessableEntity)
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

	_, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			Token:                   user.ResetToken(token),
			NewPassword:             user.RawPassword(input.Password),
			NewPasswordConfirmation: user.RawPassword(input.PasswordConfirmation),
		},
	)
	if err != nil {
		if !response.RenderPasswordError(rw, err) {
			response.RenderInternalError(rw)
		}
		return
	}

	response.RenderMessage(rw, "your password has been reset", http.StatusOK)
}
