package common

import (
	"fmt"
	"strings"
)

// Optional carries a value that may be absent, e.g. the reset token of a
// forgot-password request for an unknown email.
type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

func (p Optional[T]) Get() (T, bool) {
	return p.Value, p.IsPresent
}

func (p Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

// Email is a lower-cased, trimmed email address.
type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}

// Masked keeps the first character of the local part and the domain, for logs.
func (e Email) Masked() string {
	local, domain, ok := strings.Cut(string(e), "@")
	if !ok || local == "" {
		return "***"
	}
	return local[:1] + "***@" + domain
}
