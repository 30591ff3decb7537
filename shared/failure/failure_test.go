package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"restate/shared/failure"
	"testing"
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
			name:    "MissingCallbackParams",
			failure: failure.MissingCallbackParams,
			code:    http.StatusBadRequest,
			message: "callback URL is missing the secret or userId parameter",
		},
		{
			name:    "SessionMissing",
			failure: failure.SessionMissing,
			code:    http.StatusUnauthorized,
			message: "no active session",
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

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"BadRequest", failure.BadRequest(errors.New("bad")), http.StatusBadRequest},
		{"BadRequestFromString", failure.BadRequestFromString("bad"), http.StatusBadRequest},
		{"Unauthorized", failure.Unauthorized("no"), http.StatusUnauthorized},
		{"NotFound", failure.NotFound("property not found"), http.StatusNotFound},
		{"Cancelled", failure.Cancelled("user closed the auth window"), failure.StatusClientClosedRequest},
		{"InternalError", failure.InternalError(errors.New("boom")), http.StatusInternalServerError},
		{"Remote", failure.Remote(http.StatusTooManyRequests, "rate limited"), http.StatusTooManyRequests},
		{"Remote zero code", failure.Remote(0, "unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestNilConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode_NonFailure(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", got)
	}
}

func TestGetCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("fetching property: %w", failure.NotFound("property not found"))

	if !failure.IsNotFound(wrapped) {
		t.Error("expected wrapped not-found failure to be classified as not found")
	}
}

func TestIsCancelled(t *testing.T) {
	if !failure.IsCancelled(failure.Cancelled("closed")) {
		t.Error("expected cancelled failure to be classified as cancelled")
	}

	if failure.IsCancelled(failure.NotFound("x")) {
		t.Error("expected not-found failure to not be classified as cancelled")
	}
}
