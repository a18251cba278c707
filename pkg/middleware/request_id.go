package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"
const requestIDKey = "request_id"

// RequestID assigns a UUID to every request, reusing an inbound X-Request-ID
// header when the caller already supplied one, and echoes it back on the
// response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, or "" if absent.
func GetRequestID(c *gin.Context) string {
	id, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	s, _ := id.(string)
	return s
}
