package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"codeberg.org/codementor/server/internal/errors"
	"codeberg.org/codementor/server/internal/logger"
)

const (
	keyPrefix = "codementor:ratelimit"

	// how long to wait for redis when the limiter starts
	pingTimeout = 5 * time.Second
)

// per-client request limiter for the public endpoints
type Limiter struct {
	limiter *limiter.Limiter
	client  *redis.Client
}

// creates a limiter for a rate like "60-M".
// counters live in redis when redisURL is set, in process memory otherwise.
func New(formatted, redisURL string) (*Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	if redisURL == "" {
		store := memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          keyPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})

		logger.Info("rate limiter using memory store", "rate", formatted)

		return &Limiter{limiter: limiter.New(store, rate)}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// test connection
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   keyPrefix,
		MaxRetry: 3,
	})
	if err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}

	logger.Info("rate limiter using redis store", "rate", formatted)

	return &Limiter{limiter: limiter.New(store, rate), client: client}, nil
}

// returns a gin middleware that rejects clients over the limit with 429
func (l *Limiter) Middleware() gin.HandlerFunc {
	return mgin.NewMiddleware(l.limiter,
		mgin.WithLimitReachedHandler(limitReached),
		mgin.WithErrorHandler(storeFailed),
	)
}

// closes the redis connection if one is open
func (l *Limiter) Close() error {
	if l.client == nil {
		return nil
	}

	return l.client.Close()
}

func limitReached(c *gin.Context) {
	logger.FromContext(c.Request.Context()).Warn("rate limit exceeded",
		"ip", c.ClientIP(),
		"path", c.Request.URL.Path,
	)

	if reset := c.Writer.Header().Get("X-RateLimit-Reset"); reset != "" {
		if ts, err := strconv.ParseInt(reset, 10, 64); err == nil {
			if wait := time.Until(time.Unix(ts, 0)); wait > 0 {
				c.Header("Retry-After", strconv.Itoa(int(wait.Seconds())+1))
			}
		}
	}

	errors.TooManyRequests(c, "too many requests. please slow down.")
}

// store failures are logged and the request goes through
func storeFailed(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Error("rate limiter store failed", "error", err)
	c.Next()
}
