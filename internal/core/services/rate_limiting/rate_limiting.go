package ratelimiting

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	ratelimiter "budgetsync/internal/core/domain/rate_limiter"
	"budgetsync/internal/core/services"
	"context"
	"strings"
)

// Keyed inputs name the bucket they are counted in, e.g. "log-in-with-email::<email>".
type Keyed interface {
	GetRateLimitKey() string
}

type limited[T Keyed, S any] struct {
	log     logging.Logger
	limiter ratelimiter.RateLimiter
	limit   ratelimiter.Limit
	inner   services.Service[T, S]
}

// WithRateLimiting rejects calls with ratelimiter.ErrRateLimitExceeded once
// the input's bucket has used up its limit. Keys are case-insensitive.
func WithRateLimiting[T Keyed, S any](
	log logging.Logger,
	limiter ratelimiter.RateLimiter,
	limit ratelimiter.Limit,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if limiter == nil {
		panic(e.NewNilArgumentError("limiter"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &limited[T, S]{log: log, limiter: limiter, limit: limit, inner: inner}
}

func (s *limited[T, S]) Run(ctx context.Context, input T) (S, error) {
	var empty S
	if err := ctx.Err(); err != nil {
		return empty, err
	}

	key := strings.ToLower(input.GetRateLimitKey())
	if s.limiter.CheckLimit(ctx, key, s.limit).IsAllowed {
		return s.inner.Run(ctx, input)
	}

	s.log.Warning(
		ctx,
		"Rate limit exceeded.",
		logging.Entry("key", key),
		logging.Entry("limit", s.limit.Value),
		logging.Entry("interval", s.limit.Interval),
	)
	return empty, ratelimiter.ErrRateLimitExceeded
}
