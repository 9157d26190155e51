package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code string
		http int
	}{
		{"not found", NotFound("Booking"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad input", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad date"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("slot taken"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("too slow"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("mongo"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.http {
				t.Errorf("expected status %d, got %d", tt.http, tt.err.StatusCode())
			}
		})
	}
}

func TestConflictWrap_KeepsSentinelReachable(t *testing.T) {
	sentinel := errors.New("slot full")
	err := ConflictWrap(sentinel, "The slot is fully booked")

	if !errors.Is(err, sentinel) {
		t.Error("expected sentinel to survive wrapping")
	}
	if err.StatusCode() != http.StatusConflict {
		t.Errorf("expected 409, got %d", err.StatusCode())
	}
}

func TestUnavailableWrap_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := UnavailableWrap(cause, "availability store")

	if !errors.Is(err, cause) {
		t.Error("expected cause to survive wrapping")
	}
}

func TestAsAppError_PassesThroughAndWraps(t *testing.T) {
	appErr := NotFound("Booking")
	if got := AsAppError(appErr); got != appErr {
		t.Error("expected AppError passed through unchanged")
	}

	plain := errors.New("something broke")
	got := AsAppError(plain)
	if got.Code != CodeInternal {
		t.Errorf("expected plain error to become internal, got %s", got.Code)
	}
	if !errors.Is(got, plain) {
		t.Error("expected original error preserved as cause")
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Booking", "ABC123XYZ789")
	if err.Details["id"] != "ABC123XYZ789" {
		t.Errorf("expected id detail, got %v", err.Details)
	}
}
