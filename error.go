package advent

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error codes.
const (
	ECONFIG       = "config"
	EINVALID      = "invalid"
	ENOTFOUND     = "not_found"
	EUNAUTHORIZED = "unauthorized"
	EFETCH        = "fetch"
	EINTERNAL     = "internal"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("advent error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// FetchError reports a failed retrieval of a puzzle URL. Status is zero
// when the request never produced a response.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	if e.Status == http.StatusOK {
		return fmt.Sprintf("fetch %s: empty response body", e.URL)
	}
	return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Code classifies the failure by response status.
func (e *FetchError) Code() string {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return EUNAUTHORIZED
	case http.StatusNotFound:
		return ENOTFOUND
	default:
		return EFETCH
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	var fe *FetchError
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	} else if errors.As(err, &fe) {
		return fe.Code()
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	var fe *FetchError
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	} else if errors.As(err, &fe) {
		return fe.Error()
	}
	return "Internal error."
}
