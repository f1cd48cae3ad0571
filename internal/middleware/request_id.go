package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mertkaradayi/gradecore/internal/pkg/logger"
)

// RequestIDHeader is the header the request id travels in.
const RequestIDHeader = "X-Request-Id"

// ContextRequestID is the gin context key for the request id.
const ContextRequestID = "requestId"

// RequestID assigns every request an id so a whole import batch can be
// followed through the logs. An incoming id is kept, otherwise one is
// generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
