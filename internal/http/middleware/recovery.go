// README: Recovery middleware; logs the panic and answers 500.
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.String("panic", fmt.Sprint(err)),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", RequestIDFrom(c)),
					zap.ByteString("stack", debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"status": "failure",
					"error":  "internal error",
				})
			}
		}()
		c.Next()
	}
}
