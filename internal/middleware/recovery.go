package middleware

import (
	"github.com/gin-gonic/gin"

	"sales-analytics-srv/pkg/log"
	"sales-analytics-srv/pkg/response"
)

// Recovery recovers from panics and converts them into opaque 500 responses.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
