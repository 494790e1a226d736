package adgen

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL   = "internal"
	EINVALID    = "invalid"
	EOVERLOADED = "overloaded"

	// Extraction and fetch failures. Each maps to its own user-facing message.
	ENOCONTENT   = "no_content"
	EUNREACHABLE = "unreachable"
	EREFUSED     = "refused"
	ETIMEOUT     = "timeout"
	EFORBIDDEN   = "forbidden"
	ENOTFOUND    = "not_found"
	EUPSTREAM    = "upstream"
	EFETCH       = "fetch"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("adgen error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return the raw error text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsExtractionError reports whether err is one of the fetch or extraction
// failures that are surfaced to callers as a bad request.
func IsExtractionError(err error) bool {
	switch ErrorCode(err) {
	case ENOCONTENT, EUNREACHABLE, EREFUSED, ETIMEOUT, EFORBIDDEN, ENOTFOUND, EUPSTREAM, EFETCH:
		return true
	}
	return false
}
