package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder receives request lifecycle samples
type HTTPRecorder interface {
	HTTPStarted()
	HTTPFinished(method, route string, status int, elapsed time.Duration)
}

// Metrics records in-flight count, status and latency per matched route
func Metrics(recorder HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		recorder.HTTPStarted()

		defer func() {
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			recorder.HTTPFinished(c.Request.Method, route, c.Writer.Status(), time.Since(start))
		}()

		c.Next()
	}
}
