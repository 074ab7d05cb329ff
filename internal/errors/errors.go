package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError represents a standardized API error response. Only the detail
// string ever reaches the client; internal error text never does.
type APIError struct {
	Detail string `json:"detail"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Detail
}

// NewAPIError creates a new APIError
func NewAPIError(detail string) *APIError {
	return &APIError{Detail: detail}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Could not validate credentials"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(detail))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Not enough permissions"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(detail))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(detail))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(detail))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(detail))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(detail))
}
