package analyzer

import (
	"errors"
	"fmt"
)

// Kind identifies a user-visible failure of an analysis run.
type Kind string

const (
	KindNoEntriesFound Kind = "NO_ENTRIES_FOUND"
	KindProcessing     Kind = "PROCESSING_ERROR"
)

const (
	msgNoEntriesFound = "No valid time entries found. Make sure each task includes time in [X mins] format."
	msgProcessing     = "Error processing time data. Please check the format."
)

// Error is returned by Analyze. Message is suitable for showing to the user as-is.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewNoEntriesFound creates the error reported when no line carries a duration marker.
func NewNoEntriesFound() *Error {
	return &Error{
		Kind:    KindNoEntriesFound,
		Message: msgNoEntriesFound,
	}
}

// NewProcessing creates the error reported for any unexpected pipeline failure.
func NewProcessing(err error) *Error {
	return &Error{
		Kind:    KindProcessing,
		Message: msgProcessing,
		Err:     err,
	}
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var aErr *Error
	if errors.As(err, &aErr) {
		return aErr.Kind == kind
	}
	return false
}

// UserMessage returns the message to display for err.
// Errors that did not come from Analyze get the generic processing message.
func UserMessage(err error) string {
	var aErr *Error
	if errors.As(err, &aErr) {
		return aErr.Message
	}
	return msgProcessing
}
