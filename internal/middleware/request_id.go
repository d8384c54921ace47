package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/coldtech-agenda/internal/requestid"
)

const ContextRequestID = "request_id"

// RequestID reuses the caller's X-Request-ID or generates one, echoes it
// back and puts it on the request context for the agenda logs and audit.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(requestid.Header, id)
		c.Request = c.Request.WithContext(requestid.With(c.Request.Context(), id))

		c.Next()
	}
}
