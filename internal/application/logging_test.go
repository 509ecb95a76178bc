package application

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/example/business-portal/internal/persistence"
)

func TestDefaultLogger(t *testing.T) {
	t.Parallel()

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	if got := defaultLogger(custom); got != custom {
		t.Fatalf("expected custom logger to be returned")
	}

	if got := defaultLogger(nil); got != slog.Default() {
		t.Fatalf("expected default logger when none provided")
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "not found", err: ErrNotFound, want: "not_found"},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", ErrNotFound), want: "not_found"},
		{name: "access code not set", err: ErrAccessCodeNotSet, want: "access_code_not_set"},
		{name: "invalid access code", err: ErrInvalidAccessCode, want: "invalid_access_code"},
		{name: "storage", err: fmt.Errorf("write: %w", persistence.ErrStorage), want: "storage_failure"},
		{name: "validation", err: &ValidationError{FieldErrors: map[string]string{"title": "required"}}, want: "validation"},
		{name: "unexpected", err: fmt.Errorf("boom"), want: "unexpected"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ErrorKind(tt.err); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
