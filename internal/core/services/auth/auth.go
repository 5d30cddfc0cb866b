package auth

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/user"
	"budgetsync/internal/core/services"
	"context"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

func WithToken(ctx context.Context, token user.SessionToken) context.Context {
	return context.WithValue(ctx, CONTEXT_AUTH_TOKEN_KEY, token)
}

func TokenFromContext(ctx context.Context) (user.SessionToken, bool) {
	token, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.SessionToken)
	return token, ok && token != ""
}

// Input is implemented by inputs of services that act on behalf of the
// session owner.
type Input interface {
	WithAuthenticatedUser(u user.User) Input
}

type service[T Input, S any] struct {
	sessionRepository user.SessionRepository
	inner             services.Service[T, S]
}

// WithAuthentication resolves the session token stored in the context and
// hands the session owner to inner. A missing or unknown token fails with
// user.ErrUserDoesNotExist before inner runs.
func WithAuthentication[T Input, S any](
	sessionRepository user.SessionRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{sessionRepository: sessionRepository, inner: inner}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	token, ok := TokenFromContext(ctx)
	if !ok {
		return result, user.ErrUserDoesNotExist
	}
	owner, err := s.sessionRepository.GetUserByToken(ctx, token)
	if err != nil {
		return result, err
	}
	authenticated, ok := input.WithAuthenticatedUser(owner).(T)
	if !ok {
		panic("WithAuthenticatedUser must return the input type it is called on")
	}
	return s.inner.Run(ctx, authenticated)
}
