package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   errorBody `json:"error"`
}

// ErrorHandler serializes the last error attached to the context into the
// uniform failure envelope. Handlers attach errors with c.Error and return;
// nothing else writes failure bodies.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := Normalize(c.Errors.Last().Err)
		if appErr.Kind == Internal || appErr.Kind == Upstream {
			log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
		}

		status := appErr.Kind.StatusCode()
		c.JSON(status, errorEnvelope{
			Success: false,
			Message: appErr.Message,
			Error: errorBody{
				StatusCode: status,
				Message:    appErr.Message,
			},
		})
	}
}
