package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"minerva-site/internal/logger"
)

// RequestLogger registra cada request con zap
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := float64(time.Since(start).Microseconds()) / 1000
		log.LogHTTPRequest(c.Request.Method, path, c.ClientIP(), c.Writer.Status(), duration)
	}
}
