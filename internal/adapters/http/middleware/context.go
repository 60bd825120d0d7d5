// Package middleware provides the gin middleware chain for the quotes API.
package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-api/internal/platform/logging"
)

// ContextLogger stores logger in the request context so the ID middleware
// and handlers further down the chain enrich and use the same logger.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logging.WithContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
