package common

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("TEXT_MISSING", "no text file", ErrInvalidInput)
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("AppError does not unwrap to its sentinel cause")
	}
	if got := err.Error(); got != "TEXT_MISSING: no text file: invalid input" {
		t.Errorf("Error() = %q", got)
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"invalid input", NewAppError("TEXT_MISSING", "no text file", ErrInvalidInput), codes.InvalidArgument},
		{"validation", NewAppError("VALIDATION", "bad docket number", ErrValidation), codes.InvalidArgument},
		{"not found", NewAppError("CASE_LOOKUP", "unknown case", ErrNotFound), codes.NotFound},
		{"llm failure", NewAppError("LLM_EXTRACT", "timeout", ErrLLMFailed), codes.Internal},
		{"plain error", errors.New("disk full"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusCode(tt.err); got != tt.want {
				t.Errorf("StatusCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
