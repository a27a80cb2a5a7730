package middleware

import (
	"heirloom/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags every request with an id and stores a
// field-scoped logger in the context for handlers to pick up.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		logger := utils.GetLogger().With(
			zap.String("requestId", requestID),
			zap.String("path", c.Request.URL.Path),
		)
		c.Set("logger", logger)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
