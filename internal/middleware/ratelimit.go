package middleware

import (
	"context"
	"fmt"
	"time"

	"lendhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// CheckRateLimit checks if a resource has exceeded its fixed-window
// rate limit. Returns true if allowed. Fails open when Redis is
// unavailable or errors.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}
	if cnt == 1 {
		rdb.Expire(ctx, key, window)
	}
	return cnt <= int64(limit), nil
}

// RateLimit returns a Fiber middleware enforcing limit requests per
// window per acting user (falling back to the remote IP when the
// user header is absent).
func RateLimit(rdb *redis.Client, limit int, window time.Duration, name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id string
		if uid := c.Get("X-Sharer-User-Id"); uid != "" {
			id = "user:" + uid
		} else {
			id = "ip:" + c.IP()
		}

		allowed, _ := CheckRateLimit(c.Context(), rdb, name, id, limit, window)
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
				Status:      "429",
				Timestamp:   time.Now(),
				Error:       "Too many requests",
				Description: "rate limit exceeded, please try again later",
			})
		}
		return c.Next()
	}
}
