package prefixid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrefix is returned when a prefix fails the profile's rule.
	ErrInvalidPrefix = errors.New("invalid prefix")
	// ErrIDTooLong is returned when an id exceeds the profile's length cap.
	ErrIDTooLong = errors.New("id too long")
	// ErrMissingSeparator is returned by Parse when the id has no underscore.
	ErrMissingSeparator = errors.New("missing separator")
	// ErrEmptyPayload is returned when nothing follows the separator.
	ErrEmptyPayload = errors.New("empty encoded part")
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("parse failure")
	// ErrPrefixMismatch is returned by Check when the parsed prefix differs
	// from the expected one.
	ErrPrefixMismatch = errors.New("prefix mismatch")
)

// ParseError wraps any failure raised after the separator was found. It
// matches both ErrParse and the underlying cause under errors.Is.
type ParseError struct {
	ID  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.ID, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
