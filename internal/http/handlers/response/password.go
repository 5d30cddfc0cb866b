package response

import (
	"budgetsync/internal/core/domain/user"
	"errors"
	"net/http"
)

const (
	MsgResetLinkInvalid     = "invalid or expired link"
	MsgResetLinkUsed        = "this reset link has already been used"
	MsgResetLinkExpired     = "this reset link has expired, please request a new one"
	MsgPasswordsDoNotMatch  = "passwords do not match"
	MsgPasswordTooWeak      = "password is too weak"
	MsgPasswordResetRequest = "If an account exists with that email, a password reset link has been sent."
)

// RenderPasswordError renders reset token and password policy errors.
// It returns false if err is none of them.
func RenderPasswordError(rw http.ResponseWriter, err error) bool {
	var msg string
	switch {
	case errors.Is(err, user.ErrPasswordResetTokenNotFound):
		msg = MsgResetLinkInvalid
	case errors.Is(err, user.ErrPasswordResetTokenAlreadyUsed):
		msg = MsgResetLinkUsed
	case errors.Is(err, user.ErrPasswordResetTokenExpired):
		msg = MsgResetLinkExpired
	case errors.Is(err, user.ErrPasswordsDoNotMatch):
		msg = MsgPasswordsDoNotMatch
	case errors.Is(err, user.ErrPasswordTooWeak):
		msg = MsgPasswordTooWeak
	default:
		return false
	}
	RenderError(rw, msg, http.StatusUnprocessableEntity)
	return true
}
