package errors

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tripline/tripline-backend/logger"
)

type ErrorType string

const (
	ValidationError      ErrorType = "VALIDATION_ERROR"
	NotFoundError        ErrorType = "NOT_FOUND"
	DateRangeError       ErrorType = "DATE_RANGE_ERROR"
	DatabaseError        ErrorType = "DATABASE_ERROR"
	ExternalServiceError ErrorType = "EXTERNAL_SERVICE_ERROR"
	ServerError          ErrorType = "SERVER_ERROR"
)

const dateLayout = "2006-01-02"

// DateRange reports the inclusive date window a trip detail must fall into.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType  `json:"type"`
	Message    string     `json:"message"`
	Detail     string     `json:"detail,omitempty"`
	ValidRange *DateRange `json:"valid_range,omitempty"`
	HTTPStatus int        `json:"-"`
	Raw        error      `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped raw error for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code associated with the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// Helper functions for common errors

func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// DateOutOfRange reports a trip-detail date outside the parent trip's window.
// The valid range travels with the error so the caller can surface it.
func DateOutOfRange(start, end time.Time) *AppError {
	return &AppError{
		Type:    DateRangeError,
		Message: "Trip detail date must fall within the trip's date range",
		Detail: fmt.Sprintf("valid range: %s..%s",
			start.Format(dateLayout), end.Format(dateLayout)),
		ValidRange: &DateRange{
			StartDate: start.Format(dateLayout),
			EndDate:   end.Format(dateLayout),
		},
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewDatabaseError(err error) *AppError {
	// Log original error but return sanitized message
	logger.GetLogger().Errorw("Database error", "error", err)
	return &AppError{
		Type:       DatabaseError,
		Message:    "Database operation failed",
		Detail:     "Please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

func ExternalService(service string, err error) *AppError {
	logger.GetLogger().Errorw("External service error", "service", service, "error", err)
	return &AppError{
		Type:       ExternalServiceError,
		Message:    fmt.Sprintf("%s request failed", service),
		Detail:     err.Error(),
		HTTPStatus: http.StatusBadGateway,
		Raw:        err,
	}
}

// LocationNotFound signals the geocoder could not resolve a location string.
// Mapped to 400 because the input, not the upstream service, is at fault.
func LocationNotFound(location string) *AppError {
	return &AppError{
		Type:       ExternalServiceError,
		Message:    "Location could not be resolved",
		Detail:     fmt.Sprintf("location: %s", location),
		HTTPStatus: http.StatusBadRequest,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case DateRangeError:
		return http.StatusBadRequest
	case DatabaseError:
		return http.StatusInternalServerError
	case ExternalServiceError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
