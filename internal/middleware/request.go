package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request ID generation
	"github.com/sirupsen/logrus" // Structured logging
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID keeps an incoming X-Request-ID or generates one, and echoes it back
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader) // Reuse the caller's ID if present
		if id == "" {
			id = uuid.NewString() // Otherwise generate a new one
		}
		c.Set("requestID", id)        // Store request ID in context
		c.Header(RequestIDHeader, id) // Echo it to the client
		c.Next()                      // Proceed to the next handler
	}
}

// AccessLog writes one logrus line per request once the response is written
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Request start time
		c.Next()            // Run the rest of the chain

		entry := logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("requestID"),         // Request ID
			"method":     c.Request.Method,                 // HTTP method
			"path":       c.Request.URL.Path,               // Request path
			"status":     c.Writer.Status(),                // Response status
			"latency_ms": time.Since(start).Milliseconds(), // Handling time
			"client_ip":  c.ClientIP(),                     // Caller address
		})
		// Server errors are logged at error level
		if c.Writer.Status() >= 500 {
			entry.Error("Request completed")
			return
		}
		entry.Info("Request completed")
	}
}
