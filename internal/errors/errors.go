package errors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error type mapped to process exit codes.
type Code int

const (
	CodeSuccess         Code = 0
	CodeInternal        Code = 1
	CodeUsage           Code = 2
	CodeUnsupported     Code = 13
	CodeMissingArgument Code = 20
	CodeConflict        Code = 21
	CodeInvalidValue    Code = 22
	CodeUnexpected      Code = 23
	CodeUnknownCommand  Code = 24
	CodeBlocked         Code = 25
	CodeHistory         Code = 30
)

// Error is a typed CLI error that carries a stable error code.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func ExitCode(err error) int {
	if err == nil {
		return int(CodeSuccess)
	}
	if cliErr, ok := As(err); ok {
		return int(cliErr.Code)
	}
	return int(CodeInternal)
}

// Type returns the envelope error type for a code.
func (c Code) Type() string {
	switch c {
	case CodeUsage:
		return "usage_error"
	case CodeUnsupported:
		return "unsupported"
	case CodeMissingArgument:
		return "missing_required"
	case CodeConflict:
		return "conflicting_options"
	case CodeInvalidValue:
		return "invalid_value"
	case CodeUnexpected:
		return "unexpected_argument"
	case CodeUnknownCommand:
		return "unrecognized_verb"
	case CodeBlocked:
		return "command_blocked"
	case CodeHistory:
		return "history_error"
	default:
		return "internal_error"
	}
}
