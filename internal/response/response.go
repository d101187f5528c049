package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Error codes used by services to classify failures. Handlers map these to
// HTTP status codes; the wire format stays a flat {"error": message} object.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// AppError is a classified service-layer error.
type AppError struct {
	Code    string
	Message string
	Details string
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorBody is the failure envelope returned to clients.
type ErrorBody struct {
	Error string `json:"error"`
}

// DeleteBody confirms a hard delete.
type DeleteBody struct {
	Message string `json:"message"`
}

// SendError writes the failure envelope and aborts the request.
func SendError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}

// SendSuccess writes the payload as-is. Records and record arrays are
// returned raw, not wrapped.
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
