// Package errors defines the coded errors heatgrid returns.
//
// A failure is an [*Error] carrying a [Code]. Codes fall into three classes
// that the CLI maps to exit statuses:
//
//   - usage: bad options, gradient specs, bounds, paths or formats (exit 2)
//   - data: points that do not fit the axes, empty tables, missing input (exit 3)
//   - internal: encoder and cache backend failures (exit 1)
//
// Construct with [New], [Wrap] or the [Invalid] and [Data] shorthands, and
// test with [Is]:
//
//	if errors.Is(err, errors.ErrCodeInvalidData) {
//	    ...
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable failure category.
type Code string

const (
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeUnsupported     Code = "UNSUPPORTED"

	ErrCodeInvalidData  Code = "INVALID_DATA"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeNotFound     Code = "NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Process exit statuses reported by [ExitCode].
const (
	ExitInternal = 1
	ExitUsage    = 2
	ExitData     = 3
)

var exitCodes = map[Code]int{
	ErrCodeInvalidArgument: ExitUsage,
	ErrCodeInvalidFormat:   ExitUsage,
	ErrCodeInvalidPath:     ExitUsage,
	ErrCodeUnsupported:     ExitUsage,
	ErrCodeInvalidData:     ExitData,
	ErrCodeFileNotFound:    ExitData,
	ErrCodeNotFound:        ExitData,
}

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with an underlying cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Invalid reports a configuration mistake (ErrCodeInvalidArgument).
func Invalid(format string, args ...any) *Error {
	return New(ErrCodeInvalidArgument, format, args...)
}

// Data reports input that cannot be charted (ErrCodeInvalidData).
func Data(format string, args ...any) *Error {
	return New(ErrCodeInvalidData, format, args...)
}

// Is reports whether the first *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the first *Error in err's chain,
// followed by its cause if any, without the code prefix. Other errors are
// returned as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// ExitCode maps err to a process exit status. It returns 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if c, ok := exitCodes[GetCode(err)]; ok {
		return c
	}
	return ExitInternal
}
