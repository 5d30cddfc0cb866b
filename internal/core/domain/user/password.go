package user

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 256
)

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

// CheckNewPassword applies the password policy to a password chosen by a user.
func CheckNewPassword(password RawPassword, confirmation RawPassword) error {
	if password != confirmation {
		return ErrPasswordsDoNotMatch
	}
	return CheckPasswordStrength(password)
}

func CheckPasswordStrength(password RawPassword) error {
	err := validation.Validate(
		string(password),
		validation.Required,
		validation.Length(MinPasswordLength, MaxPasswordLength),
	)
	if err != nil {
		return fmt.Errorf("%w (%v)", ErrPasswordTooWeak, err)
	}
	return nil
}
