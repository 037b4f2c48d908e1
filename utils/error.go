package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies failures at the operation boundary.
type ErrorKind string

const (
	KindInvalidInput     ErrorKind = "INVALID_INPUT"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindStoreUnavailable ErrorKind = "STORE_UNAVAILABLE"
)

// FieldError names one offending request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// AppError is the error type returned by the service layer.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewInvalidInput(message string, fields ...FieldError) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message, Fields: fields}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// NewStoreUnavailable wraps a driver error. The driver error is logged but
// never inspected.
func NewStoreUnavailable(message string, err error) *AppError {
	return &AppError{Kind: KindStoreUnavailable, Message: message, Err: err}
}

// KindOf returns the kind of err, or StoreUnavailable for unclassified errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStoreUnavailable
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind ErrorKind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string       `json:"message"`
	Error   ErrorKind    `json:"error"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Error:   KindStoreUnavailable,
				})
			}
		}()
		c.Next()
	}
}

// RespondError writes err as a JSON error. fallback is the message used for
// unclassified errors so driver details never reach the client.
func RespondError(c *gin.Context, logger *zap.Logger, fallback string, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewStoreUnavailable(fallback, err)
	}

	if appErr.Message == "" {
		appErr.Message = fallback
	}

	if appErr.Kind == KindStoreUnavailable {
		logger.Error(appErr.Message, zap.Error(err), zap.String("path", c.Request.URL.Path))
	} else {
		logger.Warn(appErr.Message, zap.String("kind", string(appErr.Kind)), zap.String("path", c.Request.URL.Path))
	}

	c.JSON(StatusFor(appErr.Kind), ErrorResponse{Message: appErr.Message, Error: appErr.Kind, Fields: appErr.Fields})
}
