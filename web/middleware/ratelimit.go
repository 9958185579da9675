package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/entity"
)

// RateLimitConfig configures per-client request limiting.
type RateLimitConfig struct {
	RequestsPerMinute int
	KeyFunc           func(c *gin.Context) string
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 60,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// RateLimit counts requests per client and path over a one minute window.
// Counters live in process memory; a restart resets them, which is
// acceptable for slowing credential stuffing on the auth endpoints.
func RateLimit(config RateLimitConfig) gin.HandlerFunc {
	counters := cache.New(time.Minute, 5*time.Minute)
	return func(c *gin.Context) {
		key := config.KeyFunc(c) + ":" + c.Request.URL.Path

		count, err := counters.IncrementInt64(key, 1)
		if err != nil {
			counters.Set(key, int64(1), cache.DefaultExpiration)
			count = 1
		}

		if count > int64(config.RequestsPerMinute) {
			logger.Warningf("rate limit exceeded for %s (count: %d)", key, count)
			c.JSON(http.StatusTooManyRequests, entity.Msg{
				Success: false,
				Msg:     "too many requests, try again later",
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(int64(config.RequestsPerMinute)-count, 10))
		c.Next()
	}
}
