package vagas

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Category is the normalized class of a failed API call.
type Category string

const (
	CategoryNotFound     Category = "not_found"
	CategoryUnauthorized Category = "unauthorized"
	CategoryForbidden    Category = "forbidden"
	CategoryServer       Category = "server_error"
	CategoryClient       Category = "client_error"
	CategoryConnection   Category = "connection_error"
	CategoryUnexpected   Category = "unexpected_error"
)

const (
	msgNotFound     = "resource not found"
	msgUnauthorized = "authentication required"
	msgForbidden    = "access denied"
	msgServer       = "server error, try again later"
	msgClient       = "error processing request"
	msgConnection   = "connection error: check that the API is running"
	msgUnexpected   = "unexpected error"
)

// Error is the only error type returned by API calls. Message is meant for
// the user; Cause keeps the underlying failure for logs.
type Error struct {
	Category   Category
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same category, so the package sentinels can be
// used with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Category == e.Category
}

var (
	ErrNotFound     = &Error{Category: CategoryNotFound, Message: msgNotFound}
	ErrUnauthorized = &Error{Category: CategoryUnauthorized, Message: msgUnauthorized}
	ErrForbidden    = &Error{Category: CategoryForbidden, Message: msgForbidden}
	ErrServer       = &Error{Category: CategoryServer, Message: msgServer}
	ErrClient       = &Error{Category: CategoryClient, Message: msgClient}
	ErrConnection   = &Error{Category: CategoryConnection, Message: msgConnection}
	ErrUnexpected   = &Error{Category: CategoryUnexpected, Message: msgUnexpected}
)

// Configuration errors returned by New.
var (
	ErrMissingBaseURL = errors.New("api base url is not configured")
	ErrInvalidBaseURL = errors.New("api base url is invalid")
)

// CategoryOf returns the category of err, or an empty string when err is not
// an API error.
func CategoryOf(err error) Category {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Category
	}
	return ""
}

func statusError(status int, body []byte) *Error {
	e := &Error{StatusCode: status}

	switch {
	case status == http.StatusNotFound:
		e.Category, e.Message = CategoryNotFound, msgNotFound
	case status == http.StatusUnauthorized:
		e.Category, e.Message = CategoryUnauthorized, msgUnauthorized
	case status == http.StatusForbidden:
		e.Category, e.Message = CategoryForbidden, msgForbidden
	case status >= http.StatusInternalServerError:
		e.Category, e.Message = CategoryServer, msgServer
	case status >= http.StatusBadRequest:
		e.Category, e.Message = CategoryClient, serverMessage(body)
	default:
		e.Category, e.Message = CategoryUnexpected, msgUnexpected
	}

	return e
}

// serverMessage extracts the human readable message a backend puts in an
// error body.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return msg
		}
	}

	return msgClient
}

func connectionError(cause error) *Error {
	return &Error{Category: CategoryConnection, Message: msgConnection, Cause: cause}
}

func unexpectedError(cause error) *Error {
	return &Error{Category: CategoryUnexpected, Message: msgUnexpected, Cause: cause}
}
