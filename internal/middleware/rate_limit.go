package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ciclofit/ciclofit-server/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// incrExpireScript atomically increments a counter and sets its expiry on
// first use, so the window cannot leak when two requests race
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimitMiddleware creates a fixed-window per-IP rate limiter backed by
// redis. Fails open when redis is unavailable.
func RateLimitMiddleware(rdb *redis.Client, max int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || max <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		key := "rl:" + c.FullPath() + ":" + ip

		ctx := c.Request.Context()
		count, err := incrExpireScript.Run(ctx, rdb, []string{key}, window.Milliseconds()).Int()
		if err != nil {
			c.Next()
			return
		}

		remaining := max - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > max {
			response.Error(c, http.StatusTooManyRequests, -1005, "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
