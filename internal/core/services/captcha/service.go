package captcha

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/services"
	"context"
)

type service[T any, S any] struct {
	validator CaptchaValidator
	inner     services.Service[T, S]
}

// WithCaptcha rejects the call with ErrInvalidCaptcha unless the token
// stored in the context passes validation.
func WithCaptcha[T any, S any](validator CaptchaValidator, inner services.Service[T, S]) services.Service[T, S] {
	if validator == nil {
		panic(e.NewNilArgumentError("validator"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{validator: validator, inner: inner}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	if !s.validator.ValidateCaptchaToken(ctx, TokenFromContext(ctx)) {
		return result, ErrInvalidCaptcha
	}
	return s.inner.Run(ctx, input)
}
