// Package errkind defines typed errors with a small closed set of categories.
// Every failure in dorisctl is one of these kinds, carrying the underlying
// error unchanged. Callers branch on the kind rather than matching message
// text.
package errkind

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Connection indicates a failure establishing or using the SQL connection.
	Connection Kind = "connection"
	// Query indicates a failure executing a SQL statement.
	Query Kind = "query"
	// Validation indicates invalid caller-supplied input (empty import
	// payload, malformed identifier).
	Validation Kind = "validation"
	// HTTP indicates a control-plane request failure.
	HTTP Kind = "http"
	// Config indicates a configuration load or resolution failure.
	Config Kind = "config"
)

// E wraps an error with a kind and a human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error for errors.Is/errors.As chains.
func (e *E) Unwrap() error { return e.Err }

// New creates an error of the given kind with no underlying cause.
func New(kind Kind, msg string) *E { return &E{Kind: kind, Message: msg} }

// Newf creates an error of the given kind from a format string.
func Newf(kind Kind, format string, args ...any) *E {
	return &E{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a kind and message. Returns nil if err is nil.
func Wrap(kind Kind, msg string, err error) *E {
	if err == nil {
		return nil
	}
	return &E{Kind: kind, Message: msg, Err: err}
}

// Is reports whether any error in err's chain carries the given kind.
func Is(err error, kind Kind) bool {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first typed error in err's chain, or the
// empty Kind when err carries no category.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
