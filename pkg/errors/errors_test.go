package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("short write")
	tests := []struct {
		err  *Error
		want string
	}{
		{New(ErrCodeInvalidArgument, "cell width must be positive, got %d", -3), "INVALID_ARGUMENT: cell width must be positive, got -3"},
		{Wrap(ErrCodeInternal, cause, "encode %s", "png"), "INTERNAL_ERROR: encode png: short write"},
		{Invalid("bad gradient"), "INVALID_ARGUMENT: bad gradient"},
		{Data("no points"), "INVALID_DATA: no points"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestWrapChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("execute: %w", Wrap(ErrCodeInternal, cause, "cache get"))

	if !errors.Is(err, cause) {
		t.Error("cause lost through wrapping")
	}
	if got := GetCode(err); got != ErrCodeInternal {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInternal)
	}
	if got := UserMessage(err); got != "cache get: connection refused" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"match", Data("x"), ErrCodeInvalidData, true},
		{"mismatch", Data("x"), ErrCodeInvalidArgument, false},
		{"outermost code wins", Wrap(ErrCodeInternal, Data("inner"), "outer"), ErrCodeInternal, true},
		{"plain error", errors.New("plain"), ErrCodeInvalidData, false},
		{"nil", nil, ErrCodeInvalidData, false},
		{"empty code", errors.New("plain"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessagePlain(t *testing.T) {
	if got := UserMessage(Invalid("cell width must be positive")); got != "cell width must be positive" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{Invalid("x"), ExitUsage},
		{New(ErrCodeInvalidFormat, "x"), ExitUsage},
		{New(ErrCodeUnsupported, "x"), ExitUsage},
		{Data("x"), ExitData},
		{New(ErrCodeFileNotFound, "x"), ExitData},
		{New(ErrCodeInternal, "x"), ExitInternal},
		{errors.New("plain"), ExitInternal},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
