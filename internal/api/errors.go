package api

import (
	"back_office/internal/domain"     // Domain error taxonomy
	"back_office/internal/i18n"       // Localized messages
	"back_office/internal/middleware" // Negotiated language
	"net/http"                        // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// ErrorResponse is the body of every domain failure
type ErrorResponse struct {
	Code    int    `json:"code"`    // Locale independent error code
	Message string `json:"message"` // Message in the caller's language
}

// ErrorMiddleware turns the last error a handler attached with c.Error into a
// response. Domain failures become 400 with a localized message; anything
// else is logged and reported as 500.
func ErrorMiddleware(tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if de, ok := domain.AsError(err); ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    int(de.Code),                               // Stable numeric code
				Message: tr.Message(middleware.LanguageFrom(c), de), // Localized message
			})
			return
		}
		// Log the unexpected failure with request context
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("requestID"), // Request ID set by middleware
			"method":     c.Request.Method,         // HTTP method
			"path":       c.FullPath(),             // Route pattern
			"error":      err.Error(),              // Error message
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// fail records err for ErrorMiddleware and stops the handler chain
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
