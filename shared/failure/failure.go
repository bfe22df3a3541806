package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Reservation validation failures. These are caller-input errors, returned by
// the services in validation order; the transport layer maps Code to a status.
var (
	InvalidDateRange    = &Failure{Code: http.StatusBadRequest, Message: "check-out date must be after check-in date"}
	PastCheckIn         = &Failure{Code: http.StatusBadRequest, Message: "check-in date cannot be in the past"}
	RoomNotFound        = &Failure{Code: http.StatusNotFound, Message: "room not found"}
	GuestNotFound       = &Failure{Code: http.StatusNotFound, Message: "guest not found"}
	ReservationNotFound = &Failure{Code: http.StatusNotFound, Message: "reservation not found"}
	DoubleBooked        = &Failure{Code: http.StatusConflict, Message: "room is already reserved for the selected date range"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface. Errors that are not
// failures, such as storage errors bubbled up from a repository, map to 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
