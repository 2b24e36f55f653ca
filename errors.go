package tagid

import (
	"errors"
	"fmt"
)

// Error is a portable error with a stable error code.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code, so callers can compare against ErrUnknownKind and friends.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Err == nil && other.Code == e.Code
}

var (
	ErrUnknownKind  = &Error{Code: errorCodeUnknownKind, Message: errorMessageUnknownKind}
	ErrSourceFailed = &Error{Code: errorCodeSourceFailed, Message: errorMessageSourceFailed}
	ErrInvalidRange = &Error{Code: errorCodeInvalidRange, Message: errorMessageInvalidRange}
)

// ErrorCode returns the stable code carried by err, or "" when err is not an *Error.
func ErrorCode(err error) string {
	var tagErr *Error
	if errors.As(err, &tagErr) {
		return tagErr.Code
	}
	return ""
}

func unknownKindError(kind Kind) error {
	return &Error{Code: errorCodeUnknownKind, Message: fmt.Sprintf("%s %q", errorMessageUnknownKind, string(kind))}
}

func sourceError(err error) error {
	return &Error{Code: errorCodeSourceFailed, Message: errorMessageSourceFailed, Err: err}
}

func invalidRangeError(n int) error {
	return &Error{Code: errorCodeInvalidRange, Message: fmt.Sprintf("%s: %d", errorMessageInvalidRange, n)}
}
