package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http/dto"
)

// notFound answers unknown paths with the standard envelope instead of
// gin's plain-text 404.
func notFound(c *gin.Context) {
	dto.AbortWithCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
}

// methodNotAllowed answers a known path used with the wrong method.
func methodNotAllowed(c *gin.Context) {
	dto.AbortWithCode(c, dto.ErrorCodeMethodNotAllowed, "method "+c.Request.Method+" not allowed")
}
