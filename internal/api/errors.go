package api

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure modes an API operation can produce.
type Kind int

const (
	// KindNoSession means the operation needs auth and no token is held
	// locally. No network call was attempted.
	KindNoSession Kind = iota + 1
	// KindTransport covers network, DNS and response-parse failures.
	KindTransport
	// KindRejected means the server answered with a non-2xx status, or
	// the request was blocked by client-side validation before dispatch.
	KindRejected
)

func (k Kind) String() string {
	switch k {
	case KindNoSession:
		return "no-session"
	case KindTransport:
		return "transport"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Error is the only error type API operations return. Success is a nil
// error; failure always carries a Kind, so callers never see a raw
// transport exception.
type Error struct {
	Kind   Kind
	Status int    // HTTP status for rejected responses, 0 otherwise
	Detail string // human-readable message, server-provided when available
	cause  error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.cause }

func noSessionErr() *Error {
	return &Error{Kind: KindNoSession, Detail: "not logged in"}
}

func transportErr(msg string, cause error) *Error {
	return &Error{Kind: KindTransport, Detail: msg, cause: cause}
}

func rejectedErr(status int, detail string) *Error {
	return &Error{Kind: KindRejected, Status: status, Detail: detail}
}

// IsNoSession reports whether err is an auth-missing short circuit.
func IsNoSession(err error) bool { return kindOf(err) == KindNoSession }

// IsTransport reports whether err is a network or parse failure.
func IsTransport(err error) bool { return kindOf(err) == KindTransport }

// IsRejected reports whether err is a server rejection or a client-side
// validation block.
func IsRejected(err error) bool { return kindOf(err) == KindRejected }

func kindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

// Detail extracts the human-readable message from an API error, or the
// plain Error() text for anything else.
func Detail(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Detail != "" {
		return ae.Detail
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
