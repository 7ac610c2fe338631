// Package errors provides sentinel errors and error types for the rules engine.
// It defines the three error kinds the engine reports (format, illegal move,
// corrupt state) as sentinels inspectable with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed position-encoding string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed square label or out-of-range coordinates.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates a malformed move label.
	ErrInvalidMove = errors.New("invalid move label")

	// ErrIllegalMove indicates a well-formed move that is not legal in the
	// current position. This is an expected, non-fatal outcome.
	ErrIllegalMove = errors.New("illegal move")

	// ErrCorruptState indicates board state that violates a structural
	// invariant, such as a missing king. Treat as fatal rather than retrying.
	ErrCorruptState = errors.New("corrupt board state")
)

// IsFormat reports whether err is a decode-time format error, as opposed to
// an illegal move or corrupt state. Callers use this to map failures to
// "malformed request" versus "rejected".
func IsFormat(err error) bool {
	return errors.Is(err, ErrInvalidFEN) ||
		errors.Is(err, ErrInvalidSquare) ||
		errors.Is(err, ErrInvalidMove)
}

// MoveError wraps an error with the move that caused it. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Move   string // Label of the offending move (if applicable)
	Square string // Square involved (if applicable)
	Reason string // Short description of what was wrong
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	msg := "move"
	if e.Move != "" {
		msg = fmt.Sprintf("move %q", e.Move)
	}
	if e.Square != "" {
		msg += fmt.Sprintf(" at %s", e.Square)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
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
