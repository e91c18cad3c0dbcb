package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/cosmoracle/booking-api/pkg/apperrors"
)

type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// Error renders err as the standard envelope, preserving field-level
// validation messages and the status code carried by AppError.
func Error(c *gin.Context, err error) {
	appErr := apperrors.As(err)
	c.JSON(appErr.StatusCode(), &Response{
		Status:  "error",
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}
