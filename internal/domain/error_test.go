package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "message only",
			err: &Error{
				Code:    EINVALID,
				Message: "invalid input",
			},
			expected: "invalid input",
		},
		{
			name: "with operation",
			err: &Error{
				Code:    EINVALID,
				Op:      "subscription.create",
				Message: "invalid input",
			},
			expected: "subscription.create: invalid input",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "subscription.create",
				Message: "failed to save",
				Err:     errors.New("database connection failed"),
			},
			expected: "subscription.create: failed to save: database connection failed",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "failed to save",
				Err:     errors.New("database connection failed"),
			},
			expected: "failed to save: database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{
		Code:    EINTERNAL,
		Message: "wrapped",
		Err:     underlying,
	}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", unwrapped, underlying)
	}

	// Test errors.Is works through unwrapping
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "domain error",
			err:      &Error{Code: EINVALID, Message: "test"},
			expected: EINVALID,
		},
		{
			name:     "wrapped domain error",
			err:      fmt.Errorf("wrapped: %w", &Error{Code: ENOTFOUND, Message: "test"}),
			expected: ENOTFOUND,
		},
		{
			name:     "non-domain error",
			err:      errors.New("some error"),
			expected: EINTERNAL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "user-facing error",
			err:      &Error{Code: ENOTFOUND, Message: "Invoice not found"},
			expected: "Invoice not found",
		},
		{
			name:     "internal error hides details",
			err:      &Error{Code: EINTERNAL, Message: "pgx: connection refused"},
			expected: "An internal error occurred. Please try again later.",
		},
		{
			name:     "consistency error hides details",
			err:      &Error{Code: ECONSISTENCY, Message: "payment insert failed mid-transaction"},
			expected: "An internal error occurred. Please try again later.",
		},
		{
			name:     "non-domain error hides details",
			err:      errors.New("raw database error"),
			expected: "An internal error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorOp(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "domain error with op",
			err:      &Error{Code: EINVALID, Op: "payment.finalize", Message: "test"},
			expected: "payment.finalize",
		},
		{
			name:     "non-domain error",
			err:      errors.New("some error"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorOp(tt.err); got != tt.expected {
				t.Errorf("ErrorOp() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(EINVALID, "catalog.resolve", "unknown interval unit: %s", "fortnight")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("Errorf should return a *Error")
	}
	if e.Code != EINVALID {
		t.Errorf("Code = %q, want %q", e.Code, EINVALID)
	}
	if e.Op != "catalog.resolve" {
		t.Errorf("Op = %q, want %q", e.Op, "catalog.resolve")
	}
	if e.Message != "unknown interval unit: fortnight" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestWrapError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if got := WrapError(nil, EINTERNAL, "op", "msg"); got != nil {
			t.Errorf("WrapError(nil) = %v, want nil", got)
		}
	})

	t.Run("wraps underlying error", func(t *testing.T) {
		underlying := errors.New("disk full")
		err := WrapError(underlying, EINTERNAL, "invoice.upsert", "failed to save invoice")

		if !errors.Is(err, underlying) {
			t.Error("wrapped error should match errors.Is")
		}
		if ErrorCode(err) != EINTERNAL {
			t.Errorf("ErrorCode = %q, want %q", ErrorCode(err), EINTERNAL)
		}
	})
}

func TestIsCode(t *testing.T) {
	err := Errorf(ENOTFOUND, "catalog.resolve", "plan not found")

	if !IsCode(err, ENOTFOUND) {
		t.Error("IsCode should match ENOTFOUND")
	}
	if IsCode(err, EINVALID) {
		t.Error("IsCode should not match EINVALID")
	}
	if IsCode(nil, ENOTFOUND) {
		t.Error("IsCode(nil) should be false")
	}
}

func TestConvenienceFunctions(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"NotFound", NotFound("catalog.resolve", "service plan", "abc-123"), ENOTFOUND},
		{"Invalid", Invalid("subscription.create", "amount must be positive"), EINVALID},
		{"Conflict", Conflict("invoice.create", "invoice number exists"), ECONFLICT},
		{"Internal", Internal(errors.New("boom"), "subscription.create", "save failed"), EINTERNAL},
		{"Consistency", Consistency(errors.New("boom"), "payment.finalize", "transaction aborted"), ECONSISTENCY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.code {
				t.Errorf("ErrorCode = %q, want %q", got, tt.code)
			}
		})
	}
}
