// Package cnfio - error types shared by the reading layer.
package cnfio

import (
	"errors"
	"fmt"
)

// Sentinel errors for stream lexing.
var (
	// ErrMalformedInteger indicates a sign without digits or a non-digit
	// byte where an integer token was required.
	ErrMalformedInteger = errors.New("cnfio: malformed integer")

	// ErrIntegerOverflow indicates a decimal token that does not fit the
	// target integer width.
	ErrIntegerOverflow = errors.New("cnfio: integer overflow")

	// ErrTruncatedClause indicates end of input between a clause's first
	// literal and its 0 terminator.
	ErrTruncatedClause = errors.New("cnfio: truncated clause")
)

// ParseError reports a malformed token or an I/O failure while reading
// a CNF stream. Path and Line locate the offending input; Err, when
// non-nil, is the underlying sentinel or I/O error.
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

// Error renders "cnfio: <path>:<line>: <msg>", followed by ": <cause>"
// when Err is set.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cnfio: %s:%d: %s: %v", e.Path, e.Line, e.Msg, e.Err)
	}

	return fmt.Sprintf("cnfio: %s:%d: %s", e.Path, e.Line, e.Msg)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }
