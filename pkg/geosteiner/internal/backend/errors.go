package backend

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which boundary invariant a MarshalError reports.
type ErrorKind string

const (
	KindSizeMismatch   ErrorKind = "size_mismatch"   // flat buffer is not 2x the point count
	KindNullBuffer     ErrorKind = "null_buffer"     // non-zero count with a nil pointer
	KindInvalidCount   ErrorKind = "invalid_count"   // negative or overflowing element count
	KindInvalidEdge    ErrorKind = "invalid_edge"    // out-of-range index or self loop
	KindNegativeLength ErrorKind = "negative_length" // tree length below zero or NaN
)

// MarshalError reports a violated invariant while crossing the native
// boundary. Errors with the same Kind match each other under errors.Is.
type MarshalError struct {
	Kind ErrorKind
	// Field names the record field or argument at fault.
	Field string
	// Index is the element position, or -1 when not applicable.
	Index  int
	Detail string
}

func (e *MarshalError) Error() string {
	msg := "geosteiner: " + string(e.Kind)
	if e.Field != "" {
		msg += " in " + e.Field
	}
	if e.Index >= 0 {
		msg += fmt.Sprintf(" at %d", e.Index)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is matches any MarshalError of the same Kind.
func (e *MarshalError) Is(target error) bool {
	t, ok := target.(*MarshalError)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, field string, index int, format string, args ...any) *MarshalError {
	return &MarshalError{Kind: kind, Field: field, Index: index, Detail: fmt.Sprintf(format, args...)}
}

var (
	ErrSizeMismatch   = &MarshalError{Kind: KindSizeMismatch, Index: -1}
	ErrNullBuffer     = &MarshalError{Kind: KindNullBuffer, Index: -1}
	ErrInvalidCount   = &MarshalError{Kind: KindInvalidCount, Index: -1}
	ErrInvalidEdge    = &MarshalError{Kind: KindInvalidEdge, Index: -1}
	ErrNegativeLength = &MarshalError{Kind: KindNegativeLength, Index: -1}
)

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("geosteiner/internal/backend: native bindings not built")

// ErrForeignFailure wraps a non-zero status code returned by the native
// library.
var ErrForeignFailure = errors.New("geosteiner/internal/backend: native call failed")

// SizeMismatch builds the error returned when a flat buffer of length flat
// cannot hold exactly nterms points.
func SizeMismatch(field string, nterms, flat int) error {
	return newError(KindSizeMismatch, field, -1, "%d values for %d points, want %d", flat, nterms, 2*nterms)
}
