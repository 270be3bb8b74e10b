package wallex

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Kind discriminates the variants of Error.
type Kind string

const (
	KindMissingAPIKey       Kind = "MissingAPIKey"
	KindBadRequest          Kind = "BadRequest"
	KindUnauthorized        Kind = "Unauthorized"
	KindForbidden           Kind = "Forbidden"
	KindNotFound            Kind = "NotFound"
	KindInternalServerError Kind = "InternalServerError"
)

var defaultMessages = map[Kind]string{
	KindMissingAPIKey:       "Missing API key",
	KindBadRequest:          "Bad request",
	KindUnauthorized:        "Unauthorized",
	KindForbidden:           "Access forbidden",
	KindNotFound:            "Resource not found",
	KindInternalServerError: "Internal server error",
}

var statusCodes = map[Kind]int{
	KindBadRequest:          http.StatusBadRequest,
	KindUnauthorized:        http.StatusUnauthorized,
	KindForbidden:           http.StatusForbidden,
	KindNotFound:            http.StatusNotFound,
	KindInternalServerError: http.StatusInternalServerError,
}

// Sentinels for errors.Is. They match any Error of the same kind.
var (
	ErrMissingAPIKey       = &Error{Kind: KindMissingAPIKey}
	ErrBadRequest          = &Error{Kind: KindBadRequest}
	ErrUnauthorized        = &Error{Kind: KindUnauthorized}
	ErrForbidden           = &Error{Kind: KindForbidden}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrInternalServerError = &Error{Kind: KindInternalServerError}
)

// Error is the only error type returned by Client. URL is the requested
// endpoint and StatusCode the fixed code of the variant; both are empty for
// MissingAPIKey. ResponseStatus is the status the server actually returned,
// 0 when no response was received.
type Error struct {
	Kind           Kind
	Message        string
	Timestamp      time.Time
	URL            string
	StatusCode     int
	ResponseStatus int

	cause error
}

// NewMissingAPIKeyError is returned before any request is made when an
// authenticated operation runs without a key.
func NewMissingAPIKeyError() *Error {
	return &Error{
		Kind:      KindMissingAPIKey,
		Message:   defaultMessages[KindMissingAPIKey],
		Timestamp: time.Now(),
	}
}

// NewHTTPError builds an HTTP variant of the given kind for url. An empty
// message selects the default message of the kind.
func NewHTTPError(kind Kind, url, message string) *Error {
	if message == "" {
		message = defaultMessages[kind]
	}
	return &Error{
		Kind:       kind,
		Message:    message,
		Timestamp:  time.Now(),
		URL:        url,
		StatusCode: statusCodes[kind],
	}
}

// NewBadRequestError builds a BadRequest error.
func NewBadRequestError(url, message string) *Error {
	return NewHTTPError(KindBadRequest, url, message)
}

// NewUnauthorizedError builds an Unauthorized error.
func NewUnauthorizedError(url, message string) *Error {
	return NewHTTPError(KindUnauthorized, url, message)
}

// NewForbiddenError builds a Forbidden error.
func NewForbiddenError(url, message string) *Error {
	return NewHTTPError(KindForbidden, url, message)
}

// NewNotFoundError builds a NotFound error.
func NewNotFoundError(url, message string) *Error {
	return NewHTTPError(KindNotFound, url, message)
}

// NewInternalServerError builds an InternalServerError error.
func NewInternalServerError(url, message string) *Error {
	return NewHTTPError(KindInternalServerError, url, message)
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.URL != "" {
		msg = fmt.Sprintf("%s (%d %s)", msg, e.StatusCode, e.URL)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the transport or decoding failure behind the error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors of the same kind, so errors.Is(err, ErrNotFound) works
// for any NotFound error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsHTTP reports whether the error derives from an HTTP exchange.
func (e *Error) IsHTTP() bool {
	return e.Kind != KindMissingAPIKey
}

// KindOf returns the kind of err, or an empty kind when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsTemporary reports whether err is an InternalServerError. The client
// never retries; callers can pass this to retrier.WithRetryIf.
func IsTemporary(err error) bool {
	return KindOf(err) == KindInternalServerError
}

// classify maps a response status to an error kind. status 0 means no
// response was received.
func classify(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindInternalServerError
	}
}

// httpError classifies a failed exchange with url. resp may be nil.
func httpError(url string, resp *http.Response, cause error) *Error {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	e := NewHTTPError(classify(status), url, "")
	e.ResponseStatus = status
	e.cause = cause
	return e
}
