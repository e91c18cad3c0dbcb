package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error by the workflow step that produced it.
type Code int

const (
	CodeValidation Code = iota + 1000
	CodeUpload
	CodePersistence
	CodeNotification
	CodeMalformedRequest
	CodeNotFound
	CodeInternal
)

// AppError is the error type surfaced by services. Fields carries
// per-field validation messages when Code is CodeValidation.
type AppError struct {
	Code    Code              `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error code to an HTTP status. Consumed by handlers.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeValidation, CodeMalformedRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func ValidationFields(message string, fields map[string]string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Fields: fields}
}

func Upload(err error) *AppError {
	return &AppError{Code: CodeUpload, Message: "failed to upload payment screenshot", Err: err}
}

func Persistence(err error) *AppError {
	return &AppError{Code: CodePersistence, Message: "something went wrong, please try again", Err: err}
}

func Notification(err error) *AppError {
	return &AppError{Code: CodeNotification, Message: "failed to dispatch notification", Err: err}
}

func MalformedRequest(err error) *AppError {
	return &AppError{Code: CodeMalformedRequest, Message: "malformed request body", Err: err}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Internal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal server error", Err: err}
}

// As unwraps err into an *AppError, or wraps it as internal when it is not one.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code Code) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
