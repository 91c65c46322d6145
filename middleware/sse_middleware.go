package middleware

import (
	"github.com/gin-gonic/gin"
)

// SSEMiddleware prepares the response for event streaming. Keep-alive pings
// are written by the streaming handlers themselves, in the same loop as the
// events, so the ResponseWriter only ever has a single writer.
func SSEMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")

		c.Next()
	}
}
