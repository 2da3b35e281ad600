package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("configuration", "12345")

	expected := "configuration with ID 12345 not found"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true")
	}
}

func TestNotFoundErrorWrapped(t *testing.T) {
	err := fmt.Errorf("reading snapshot: %w", NewNotFoundError("snapshot", "contacts.csv"))

	if !IsNotFound(err) {
		t.Error("IsNotFound should see through wrapping")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("privateKey", "", "required but empty")

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}

	expected := "validation failed for field privateKey: required but empty"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	// No field set
	err2 := NewValidationError("", nil, "bad input")
	if err2.Error() != "validation failed: bad input" {
		t.Errorf("Unexpected message: %q", err2.Error())
	}
}

func TestAPIErrorStatusMapping(t *testing.T) {
	rateLimited := NewAPIError("contacts", 429, "slow down")
	if !errors.Is(rateLimited, ErrRateLimited) {
		t.Error("status 429 should match ErrRateLimited")
	}

	unavailable := NewAPIError("configurations", 503, "maintenance")
	if !errors.Is(unavailable, ErrAPIUnavailable) {
		t.Error("status 5xx should match ErrAPIUnavailable")
	}

	clientErr := NewAPIError("configurations", 404, "gone")
	if errors.Is(clientErr, ErrRateLimited) || errors.Is(clientErr, ErrAPIUnavailable) {
		t.Error("status 404 should match neither sentinel")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError("configurations", 400, "bad condition syntax")
	expected := "API error for configurations (status 400): bad condition syntax"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestConfigErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewConfigError("credentials", "missing public key", inner)

	if !errors.Is(err, inner) {
		t.Error("ConfigError should unwrap to the inner error")
	}

	expected := "configuration error in credentials: missing public key"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestAuthenticationError(t *testing.T) {
	err := &AuthenticationError{Method: "basic", Message: "missing private key"}

	if !errors.Is(err, ErrCredentialsRequired) {
		t.Error("AuthenticationError should match ErrCredentialsRequired")
	}
}

func TestWrapHelpers(t *testing.T) {
	if WrapIO("read", "x", nil) != nil {
		t.Error("WrapIO(nil) should be nil")
	}
	if WrapResource("fetch", "configuration", "1", nil) != nil {
		t.Error("WrapResource(nil) should be nil")
	}
	if WrapParse("csv", "contacts.csv", nil) != nil {
		t.Error("WrapParse(nil) should be nil")
	}
	if WrapAPI("contacts", 500, nil) != nil {
		t.Error("WrapAPI(nil) should be nil")
	}

	inner := errors.New("disk full")
	err := WrapIO("write", "/tmp/snapshots/contacts.csv", inner)
	if !errors.Is(err, inner) {
		t.Error("WrapIO should preserve the inner error")
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatal("WrapIO should produce an *IOError")
	}
	if ioErr.Operation != "write" {
		t.Errorf("Expected operation write, got %s", ioErr.Operation)
	}
}

func TestResourceError(t *testing.T) {
	inner := errors.New("connection reset")
	err := NewResourceError("fetch", "configuration", "42", inner)

	expected := "failed to fetch configuration 42: connection reset"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("ResourceError should unwrap to the inner error")
	}
}
