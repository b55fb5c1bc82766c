package supplier

import (
	"errors"
	"fmt"
)

type ErrorKind string

// Classification assigned by the client to every failed call. The facade and
// the booking coordinator attach context but never change the kind.
const (
	KindValidation      ErrorKind = "VALIDATION"
	KindTimeout         ErrorKind = "TIMEOUT"
	KindRateLimited     ErrorKind = "RATE_LIMITED"
	KindTransientServer ErrorKind = "TRANSIENT_SERVER"
	KindPermanentServer ErrorKind = "PERMANENT_SERVER"
	KindInvalidResponse ErrorKind = "INVALID_RESPONSE"
	KindNetwork         ErrorKind = "NETWORK"
)

// Retryable reports whether the client may re-attempt a call that failed with
// this kind. Malformed requests and unusable success bodies never become
// valid by retrying.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindTimeout, KindRateLimited, KindTransientServer, KindNetwork:
		return true
	default:
		return false
	}
}

// Error is the supplier call failure. Status and Body preserve the last HTTP
// response observed for diagnostics; Status is 0 for failures that never got
// a response.
type Error struct {
	Kind   ErrorKind
	Status int
	Body   string
	msg    string
	err    error // wrapped low-level error
}

func (e *Error) Error() string {
	s := string(e.Kind) + ": " + e.msg
	if e.Status != 0 {
		s = fmt.Sprintf("%s (status %d)", s, e.Status)
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.err
}

func newError(kind ErrorKind, status int, body, msg string, err error) *Error {
	return &Error{Kind: kind, Status: status, Body: body, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the classification from an error chain; ok is false when no
// supplier error is present.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
