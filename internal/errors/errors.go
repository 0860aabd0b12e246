// Package errors provides sentinel errors and wrapped error types for the
// search engine. It defines common failure conditions and structured error
// types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates a malformed move string, e.g. on the
	// user-move announcement channel (spec.md 7).
	ErrInvalidMove = errors.New("invalid move string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoKing indicates a position has no king for the side to move
	// (spec.md 7, a caller error).
	ErrNoKing = errors.New("no king for side to move")

	// ErrInvalidConfig indicates invalid configuration values, e.g. a
	// non-positive search depth (spec.md 7).
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SearchError wraps an error with search context: the position (as FEN),
// the side searching, and the ply depth at which the error was detected.
// It implements Unwrap so errors.Is()/errors.As() see through it to the
// sentinel beneath.
type SearchError struct {
	Err   error  // The underlying error.
	FEN   string // The position in FEN, if known.
	Side  string // "white" or "black", if known.
	Depth int    // Search depth at the point of failure, 0 if not applicable.
}

// Error returns a formatted error message including all available context.
func (e *SearchError) Error() string {
	var parts []string
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("fen %q", e.FEN))
	}
	if e.Side != "" {
		parts = append(parts, fmt.Sprintf("side %s", e.Side))
	}
	if e.Depth > 0 {
		parts = append(parts, fmt.Sprintf("depth %d", e.Depth))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SearchError wrapper.
func (e *SearchError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
