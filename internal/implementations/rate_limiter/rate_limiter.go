package ratelimiter

import (
	e "budgetsync/internal/core/domain/errors"
	"budgetsync/internal/core/domain/logging"
	ratelimiter "budgetsync/internal/core/domain/rate_limiter"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
)

const keyPrefix = "rate-limit::"

// Redis counts calls per key in fixed windows. A Redis failure lets the call
// through so that login and password reset keep working without Redis.
type Redis struct {
	client redis.Cmdable
	log    logging.Logger
	now    func() time.Time
}

func NewRedis(client redis.Cmdable, log logging.Logger, now func() time.Time) *Redis {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Redis{client: client, log: log, now: now}
}

func windowKey(key string, interval ratelimiter.Interval, start time.Time) string {
	return fmt.Sprintf("%s%s::%s::%d", keyPrefix, key, interval, start.Unix())
}

func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	window := limit.Interval.Duration()
	start := r.now().Truncate(window)
	k := windowKey(key, limit.Interval, start)

	var count *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.Incr(ctx, k)
		pipe.ExpireAt(ctx, k, start.Add(window))
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return ratelimiter.NotAllowed()
	}
	if err != nil {
		r.log.Error(
			ctx,
			"Could not check rate limit due to Redis client error.",
			logging.Entry("interval", limit.Interval),
			logging.Entry("err", err),
		)
		return ratelimiter.Allowed()
	}
	if count.Val() > int64(limit.Value) {
		return ratelimiter.NotAllowed()
	}
	return ratelimiter.Allowed()
}
