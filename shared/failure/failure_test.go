package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"posada/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidDateRange",
			failure: failure.InvalidDateRange,
			code:    http.StatusBadRequest,
			message: "check-out date must be after check-in date",
		},
		{
			name:    "PastCheckIn",
			failure: failure.PastCheckIn,
			code:    http.StatusBadRequest,
			message: "check-in date cannot be in the past",
		},
		{
			name:    "RoomNotFound",
			failure: failure.RoomNotFound,
			code:    http.StatusNotFound,
			message: "room not found",
		},
		{
			name:    "GuestNotFound",
			failure: failure.GuestNotFound,
			code:    http.StatusNotFound,
			message: "guest not found",
		},
		{
			name:    "ReservationNotFound",
			failure: failure.ReservationNotFound,
			code:    http.StatusNotFound,
			message: "reservation not found",
		},
		{
			name:    "DoubleBooked",
			failure: failure.DoubleBooked,
			code:    http.StatusConflict,
			message: "room is already reserved for the selected date range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestBadRequestFromString(t *testing.T) {
	result := failure.BadRequestFromString("custom bad request")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusBadRequest {
			t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
		}
		if f.Message != "custom bad request" {
			t.Errorf("expected message to be 'custom bad request', got %s", f.Message)
		}
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.DoubleBooked,
			expected: http.StatusConflict,
		},
		{
			name:     "wrapped failure",
			input:    failure.NotFound("room not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "plain error maps to internal server error",
			input:    errors.New("connection refused"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.input); got != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, got)
			}
		})
	}
}
