package errors

import (
	"net/http"

	"fuelroute/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Input-related errors
	ErrRouteDegenerate = NewBaseError(
		http.StatusBadRequest,
		"ROUTE_DEGENERATE",
		"Route is too short to plan refueling for",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// Feasibility-related errors. NO_CANDIDATE_STATIONS and SOLVER_FAILED
	// are distinct so callers can tell "nothing to buy from" apart from
	// "allocation did not converge".
	ErrNoCandidateStations = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_CANDIDATE_STATIONS",
		"No fuel stations within detour range of the route",
		"",
	)

	ErrSolverFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"SOLVER_FAILED",
		"Fuel allocation did not converge to a feasible plan",
		"",
	)

	// Reference-data errors
	ErrRegionData = NewBaseError(
		http.StatusInternalServerError,
		"REGION_DATA_INVALID",
		"Region boundary data could not be loaded",
		"",
	)

	ErrStationData = NewBaseError(
		http.StatusInternalServerError,
		"STATION_DATA_INVALID",
		"Fuel station data could not be loaded",
		"",
	)

	// Upstream collaborator errors
	ErrGeocodeFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODING_FAILED",
		"Address could not be geocoded",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"No coordinates found for the given address",
		"",
	)

	ErrRoutingFailed = NewBaseError(
		http.StatusBadGateway,
		"ROUTING_FAILED",
		"Route could not be computed between the given addresses",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
