package middleware

import (
	"strconv"
	"time"

	"salesops/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

const errorKindKey = "error_kind"

// SetErrorKind marks the request as a rejected pipeline operation.
func SetErrorKind(c *gin.Context, kind string) {
	c.Set(errorKindKey, kind)
}

// Metrics records request counts and latency by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
		if kind := c.GetString(errorKindKey); kind != "" {
			m.PipelineErrors.WithLabelValues(kind).Inc()
		}
	}
}
