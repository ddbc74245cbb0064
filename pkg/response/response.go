package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in ErrorInfo.Code.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeInvalidPrefix    = "INVALID_PREFIX"
	CodeIDTooLong        = "ID_TOO_LONG"
	CodeMissingSeparator = "MISSING_SEPARATOR"
	CodeParseFailure     = "PARSE_FAILURE"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL_ERROR"
)

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details. Details lists per-field problems for
// request validation failures.
type ErrorInfo struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// Success sends a 200 response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// Error sends an error response.
func Error(c *gin.Context, statusCode int, code, message string, details ...string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// BadRequest sends a 400 response with code BAD_REQUEST.
func BadRequest(c *gin.Context, message string, details ...string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, message, details...)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeInternal, message)
}
