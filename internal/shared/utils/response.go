package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/shared/errors"
)

// ErrorBody is the envelope every failed request is answered with.
type ErrorBody struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo carries the machine-readable code and a human message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Items    interface{} `json:"items"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int64       `json:"total"`
}

// SuccessResponse writes data as the response body.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ListSuccessResponse sends a page of items with its pagination metadata.
func ListSuccessResponse(c *gin.Context, items interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, ListResponse{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// ErrorResponse sends an error envelope with an explicit status and code.
func ErrorResponse(c *gin.Context, statusCode int, code errors.ErrorType, message string) {
	c.JSON(statusCode, ErrorBody{Error: ErrorInfo{Code: string(code), Message: message}})
}

// ErrorResponseWithError sends an error response based on error type.
// Errors that are not AppErrors are reported as a generic internal error.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		_ = c.Error(err)
		ErrorResponse(c, http.StatusInternalServerError, errors.ErrorTypeInternal, "internal server error")
		return
	}

	c.JSON(appErr.Code, ErrorBody{Error: ErrorInfo{
		Code:    string(appErr.Type),
		Message: appErr.Message,
		Details: appErr.Details,
	}})
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	ErrorResponseWithError(c, err)
	c.Abort()
}
