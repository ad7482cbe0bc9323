package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAsAppErrorPassesThrough(t *testing.T) {
	original := NewNotFound("Event not found")
	if got := AsAppError(original); got != original {
		t.Error("expected the same *AppError back")
	}
}

func TestAsAppErrorWrapsUnknown(t *testing.T) {
	cause := errors.New("connection reset")
	got := AsAppError(cause)
	if got.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", got.HTTPStatus)
	}
	if got.Message != "Internal server error" {
		t.Errorf("message = %q, want generic", got.Message)
	}
	if !errors.Is(got, cause) {
		t.Error("cause not preserved through Unwrap")
	}
}

func TestNewMissingFields(t *testing.T) {
	err := NewMissingFields([]string{"name", "course"})
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", err.HTTPStatus)
	}
	if err.Message != "Missing required fields: name, course" {
		t.Errorf("unexpected message: %q", err.Message)
	}
	fields, ok := err.Fields["missingFields"].([]string)
	if !ok || len(fields) != 2 {
		t.Errorf("missingFields = %v, want [name course]", err.Fields["missingFields"])
	}
}

func TestWithFieldAccumulates(t *testing.T) {
	err := NewValidation("paid event").
		WithField("requiresPayment", true).
		WithField("price", 49.0)
	if err.Fields["requiresPayment"] != true {
		t.Error("requiresPayment field missing")
	}
	if err.Fields["price"] != 49.0 {
		t.Error("price field missing")
	}
}

func TestDefaultedMessages(t *testing.T) {
	if got := NewUnauthorized("").Message; got != "Authentication required" {
		t.Errorf("unauthorized default = %q", got)
	}
	if got := NewForbidden("").Message; got != "Admin access required" {
		t.Errorf("forbidden default = %q", got)
	}
}
