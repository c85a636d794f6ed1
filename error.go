package jobhunter

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT  = "conflict"  // duplicate record
	ECONTENT   = "content"   // page yielded too little text
	EINTERNAL  = "internal"  // unclassified failure
	EINVALID   = "invalid"   // missing or malformed input
	ENOTFOUND  = "not_found" // unknown record or agent
	EPARSE     = "parse"     // model text is not JSON
	ERESPONSE  = "response"  // model response envelope is malformed
	ESCHEMA    = "schema"    // model JSON does not match the agent schema
	ESTORAGE   = "storage"   // key-value store failure
	ETRANSPORT = "transport" // network failure or non-2xx from the model endpoint
)

// Error represents an application-specific error. Its Message is safe to show
// to an end user.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jobhunter error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
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
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Retryable reports whether the operation that produced err may succeed if
// attempted again without changing its input.
func Retryable(err error) bool {
	switch ErrorCode(err) {
	case ETRANSPORT, ESTORAGE:
		return true
	}
	return false
}
