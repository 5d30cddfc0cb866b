package user

import (
	"errors"
	"fmt"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrUserDoesNotExist      = errors.New("user does not exist")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrSessionDoesNotExist   = errors.New("session does not exist")
)

var (
	ErrPasswordPolicyViolation = errors.New("password policy violation")
	ErrPasswordsDoNotMatch     = fmt.Errorf("%w: passwords do not match", ErrPasswordPolicyViolation)
	ErrPasswordTooWeak         = fmt.Errorf("%w: password is too weak", ErrPasswordPolicyViolation)
)

var (
	ErrPasswordResetTokenNotFound    = errors.New("password reset token not found")
	ErrPasswordResetTokenExpired     = errors.New("password reset token expired")
	ErrPasswordResetTokenAlreadyUsed = errors.New("password reset token already used")
)
