package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skill-match-api/internal/response"
)

// Recovery recovers from panics and returns a 500 instead of dropping the
// connection
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)
				response.SendError(c, http.StatusInternalServerError, "internal server error")
			}
		}()
		c.Next()
	}
}
