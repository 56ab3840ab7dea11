package ratelimit

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware rejects over-limit submissions with 429 and a Retry-After hint.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := rl.AllowSubmission(c.Request.Context(), c.ClientIP())
		if !res.Allowed {
			if res.RetryAfter > 0 {
				c.Header("Retry-After", fmt.Sprintf("%.0f", res.RetryAfter.Seconds()))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "too many submissions, please slow down",
				"retry_after": res.RetryAfter.Seconds(),
			})
			return
		}
		c.Next()
	}
}
