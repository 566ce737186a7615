package middleware

import (
	"strconv"
	"time"

	"courtpass/internal/obs"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records per-route request counts and latencies.
// FullPath keeps the label cardinality bounded to registered routes.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		obs.ObserveHTTP(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
