package ratelimit

import (
	"net/http"
	"strconv"

	"logistics-rates/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Middleware returns a fiber handler enforcing the limiter per client IP.
// When the backing cache is unreachable the request is let through; pricing
// availability wins over throttling accuracy.
func Middleware(limiter *FixedWindowLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dec, err := limiter.Allow(c.Context(), c.IP())
		if err != nil {
			logger.Get().Warn("Rate limiter unavailable, allowing request",
				zap.String("ip", c.IP()),
				zap.Error(err),
			)
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(dec.Remaining))

		if !dec.Allowed {
			c.Set("Retry-After", strconv.Itoa(int(dec.RetryAfter.Seconds())))
			return c.Status(http.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests",
			})
		}

		return c.Next()
	}
}
