package middleware

import (
	"net/http"
	"runtime/debug"

	coreport "github.com/amirhossein-jamali/transaction-manager/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-manager/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns the standard
// runtime-failure body, attaching the stack trace outside production.
func ErrorHandler(logger coreport.Logger, isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader("X-Request-ID"),
				})

				body := dto.ErrorResponse{ErrorMessage: "Internal server error"}
				if !isProduction {
					body.StackTrace = string(debug.Stack())
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()

		c.Next()
	}
}
