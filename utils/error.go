package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorBody is the error part of a failure envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SuccessResponse wraps every successful payload.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: ErrorBody{Code: "INTERNAL", Message: "An unexpected error occurred. Please try again later."},
				})
			}
		}()
		c.Next()
	}
}

// JSONSuccess sends a standardized success envelope.
func JSONSuccess(c *gin.Context, status int, message string, data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, SuccessResponse{Success: true, Message: message, Data: data})
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// RespondError classifies err and writes the failure envelope. Internal
// errors are logged with the given logger and their details hidden.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	status, code := Classify(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		JSONError(c, status, code, "internal server error")
		return
	}
	logger.Warn("request rejected", zap.String("code", code), zap.Error(err))
	JSONError(c, status, code, err.Error())
}
