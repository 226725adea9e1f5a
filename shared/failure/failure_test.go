package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fairhall/shared/failure"
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
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "InvalidCredentials",
			failure: failure.InvalidCredentials,
			code:    http.StatusUnauthorized,
			message: "Invalid email or password",
		},
		{
			name:    "EmailRegistered",
			failure: failure.EmailRegistered,
			code:    http.StatusConflict,
			message: "Email already registered",
		},
		{
			name:    "ConfirmationRequired",
			failure: failure.ConfirmationRequired,
			code:    http.StatusConflict,
			message: "Existing bookings would be discarded, confirmation required",
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

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "failure error",
			err:  failure.NotFound("stall not found"),
			code: http.StatusNotFound,
		},
		{
			name: "wrapped failure error",
			err:  fmt.Errorf("outer: %w", failure.BadRequestFromString("bad")),
			code: http.StatusBadRequest,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}
