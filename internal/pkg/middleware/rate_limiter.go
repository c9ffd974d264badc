package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
	Logger      *logger.ZapLogger
}

// RateLimiterMiddleware limits requests per client IP and route using a
// fixed window counter in Redis. Redis errors let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = logger.NewNopLogger()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), c.RealIP())

			count64, err := config.RedisClient.Incr(ctx, key).Result()
			if err == nil && count64 == 1 {
				err = config.RedisClient.Expire(ctx, key, config.Period).Err()
			}
			if err != nil {
				config.Logger.Warn("Rate limiter unavailable, allowing request",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			count := int(count64)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				reset, err := config.RedisClient.TTL(ctx, key).Result()
				if err != nil || reset < 0 {
					reset = config.Period
				}
				header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(reset).Unix(), 10))
				header.Set("Retry-After", strconv.FormatInt(int64(reset.Seconds()), 10))
				return utils.ErrorJSON(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client, l *logger.ZapLogger) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "rate:ip",
		Limit:       limit,
		Period:      period,
		Logger:      l,
	})
}
