package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	custom := "PROFESSOR_INVALID"

	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"bad request custom code", NewBadRequestError("bad", true, &custom, nil, nil), http.StatusBadRequest, custom},
		{"not found", NewNotFoundError("Professor not found", true, nil), http.StatusNotFound, "NOT_FOUND"},
		{"method not allowed", NewMethodNotAllowedError(http.MethodGet), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"too many requests", NewTooManyRequestsError(), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.Status, tt.wantStatus)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	base := NewNotFoundError("Professor not found", true, nil)
	wrapped := fmt.Errorf("get professor: %w", base)

	if !errors.Is(wrapped, &HTTPError{}) {
		t.Fatal("errors.Is should match any *HTTPError")
	}

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("errors.As should find the HTTPError")
	}
	if httpErr.Error() != "Professor not found" {
		t.Errorf("Error() = %q", httpErr.Error())
	}
}

func TestWithMessageCopies(t *testing.T) {
	fields := []FieldError{{Field: "career", Error: "is required"}}
	base := NewBadRequestError("Validation failed", true, nil, fields, nil)

	copied := base.WithMessage("Invalid professor")
	if copied == base {
		t.Fatal("WithMessage must return a new value")
	}
	if base.Message != "Validation failed" {
		t.Errorf("original mutated: %q", base.Message)
	}
	if copied.Message != "Invalid professor" || copied.Status != http.StatusBadRequest || len(copied.Errors) != 1 {
		t.Errorf("unexpected copy: %+v", copied)
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("career too long"))
	if err.Message != "Validation failed: career too long" {
		t.Errorf("message = %q", err.Message)
	}
}
