package handlers

import (
	"time"

	"magazine-cms/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one structured entry per request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, logger.String("query", q))
		}
		if len(c.Errors) > 0 {
			log.Error("HTTP request with errors", append(fields, logger.Strings("errors", c.Errors.Errors()))...)
			return
		}
		log.Info("HTTP request", fields...)
	}
}
