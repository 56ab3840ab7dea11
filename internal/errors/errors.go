package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gin-gonic/gin"
)

// ErrorCategory classifies an error for handling and logging.
type ErrorCategory string

const (
	CategoryIncompleteInput  ErrorCategory = "incomplete_input"
	CategoryValidation       ErrorCategory = "validation"
	CategoryNotFound         ErrorCategory = "not_found"
	CategoryInvalidRecord    ErrorCategory = "invalid_stored_data"
	CategoryStorage          ErrorCategory = "storage"
	CategoryMailTransport    ErrorCategory = "mail_transport"
	CategoryContentIntegrity ErrorCategory = "content_integrity"
	CategoryUnauthorized     ErrorCategory = "unauthorized"
	CategoryInternal         ErrorCategory = "internal"
)

// AppError wraps an errbuilder error with the category and HTTP status the
// handlers respond with.
type AppError struct {
	*errbuilder.ErrBuilder
	Category   ErrorCategory `json:"category"`
	HTTPStatus int           `json:"http_status"`
	Timestamp  time.Time     `json:"timestamp"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", strings.ToUpper(string(e.Category)), e.ErrBuilder.Msg)
}

func (e *AppError) Unwrap() error {
	return e.ErrBuilder.Unwrap()
}

// NewAppError creates an AppError from an errbuilder with handler context.
func NewAppError(builder *errbuilder.ErrBuilder, category ErrorCategory, httpStatus int) *AppError {
	return &AppError{
		ErrBuilder: builder,
		Category:   category,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
	}
}

// NewIncompleteInputError reports an answer set missing entries for the given
// question IDs. Scoring never runs behind this error.
func NewIncompleteInputError(dimension string, missingIDs []string) *AppError {
	errorMap := errbuilder.ErrorMap{}
	errorMap.Set("dimension", errors.New(dimension))
	errorMap.Set("missing_question_ids", errors.New(strings.Join(missingIDs, ", ")))

	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("answer set for %s is missing %d answers", dimension, len(missingIDs))).
		WithDetails(errbuilder.NewErrDetails(errorMap))

	return NewAppError(builder, CategoryIncompleteInput, http.StatusBadRequest)
}

// NewValidationError reports malformed input other than missing answers.
func NewValidationError(message string) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(message)

	return NewAppError(builder, CategoryValidation, http.StatusBadRequest)
}

// NewNotFoundError reports that no record exists for the identity key.
func NewNotFoundError(email string) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("no assessment found for %s", email))

	return NewAppError(builder, CategoryNotFound, http.StatusNotFound)
}

// NewInvalidRecordError reports a stored record whose shape no longer parses.
// Distinct from not-found: the record exists but cannot be trusted.
func NewInvalidRecordError(email string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeDataLoss).
		WithMsg(fmt.Sprintf("stored assessment for %s is invalid", email))

	if cause != nil {
		builder = builder.WithCause(cause)
	}

	return NewAppError(builder, CategoryInvalidRecord, http.StatusUnprocessableEntity)
}

// NewStorageError reports a failed save or query against the store. The
// computed in-memory result stays usable behind this error.
func NewStorageError(message string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(message)

	if cause != nil {
		builder = builder.WithCause(cause)
	}

	return NewAppError(builder, CategoryStorage, http.StatusBadGateway)
}

// NewMailError reports a failed report delivery. Retryable; nothing about the
// stored or in-memory result changes.
func NewMailError(cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg("report email could not be delivered")

	if cause != nil {
		builder = builder.WithCause(cause)
	}

	return NewAppError(builder, CategoryMailTransport, http.StatusServiceUnavailable)
}

// NewUnauthorizedError reports a missing or invalid dashboard token.
func NewUnauthorizedError(message string) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeUnauthenticated).
		WithMsg(message)

	return NewAppError(builder, CategoryUnauthorized, http.StatusUnauthorized)
}

// NewInternalError reports an unexpected failure.
func NewInternalError(message string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(message)

	if cause != nil {
		builder = builder.WithCause(cause)
	}

	return NewAppError(builder, CategoryInternal, http.StatusInternalServerError)
}

// ToAppError converts any error into an AppError, defaulting to internal.
func ToAppError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if ebErr, ok := err.(*errbuilder.ErrBuilder); ok {
		return NewAppError(ebErr, CategoryInternal, http.StatusInternalServerError)
	}

	return NewInternalError("an unexpected error occurred", err)
}

// ErrorHandler is a Gin middleware providing centralized error responses for
// handlers that attach errors to the context.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			appErr := ToAppError(c.Errors.Last().Err)
			LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
		}
	}
}

// RecoveryHandler converts panics into structured internal error responses.
func RecoveryHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appErr := NewInternalError(
			fmt.Sprintf("panic recovered: %v", recovered),
			fmt.Errorf("%v", recovered),
		)
		LogError(c, appErr)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
	})
}

// LogError logs an AppError at a level appropriate to its category. Client
// mistakes are warnings; collaborator failures are informational because the
// session survives them; everything else is an error.
func LogError(c *gin.Context, err *AppError) {
	logEntry := slog.With(
		"error_category", err.Category,
		"http_status", err.HTTPStatus,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"ip", c.ClientIP(),
	)

	switch err.Category {
	case CategoryIncompleteInput, CategoryValidation, CategoryNotFound, CategoryUnauthorized:
		logEntry.Warn(err.ErrBuilder.Msg)
	case CategoryStorage, CategoryMailTransport:
		if cause := err.ErrBuilder.Unwrap(); cause != nil {
			logEntry.Info(err.ErrBuilder.Msg, "cause", cause)
		} else {
			logEntry.Info(err.ErrBuilder.Msg)
		}
	default:
		if cause := err.ErrBuilder.Unwrap(); cause != nil {
			logEntry.Error(err.ErrBuilder.Msg, "cause", cause)
		} else {
			logEntry.Error(err.ErrBuilder.Msg)
		}
	}
}
