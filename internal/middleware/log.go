package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"checklist-ledger/pkg/log"
)

// RequestLog writes one line per request through the structured logger.
func RequestLog(l log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		ctx := c.Request.Context()
		switch {
		case status >= 500:
			l.Errorf(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		case status >= 400:
			l.Warnf(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		default:
			l.Debugf(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		}
	}
}
