package middleware

import (
	"strconv"
	"time"

	"import_admin/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per matched route. Unmatched
// paths share one label so scanners cannot blow up the series count.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
