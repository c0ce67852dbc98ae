package geosteiner

import (
	"errors"

	"github.com/geosteiner-go/geosteiner/pkg/geosteiner/internal/backend"
)

// MarshalError reports a violated boundary invariant. Use errors.Is with the
// Err* sentinels below or errors.As to inspect Kind, Field and Index.
type MarshalError = backend.MarshalError

// ErrorKind identifies the invariant reported by a MarshalError.
type ErrorKind = backend.ErrorKind

const (
	KindSizeMismatch   = backend.KindSizeMismatch
	KindNullBuffer     = backend.KindNullBuffer
	KindInvalidCount   = backend.KindInvalidCount
	KindInvalidEdge    = backend.KindInvalidEdge
	KindNegativeLength = backend.KindNegativeLength
)

var (
	// ErrSizeMismatch: a flat buffer is not exactly twice the point count.
	ErrSizeMismatch error = backend.ErrSizeMismatch

	// ErrNullBuffer: the native record claims elements but has a nil buffer.
	ErrNullBuffer error = backend.ErrNullBuffer

	// ErrInvalidCount: the native record reports a negative or oversized count.
	ErrInvalidCount error = backend.ErrInvalidCount

	// ErrInvalidEdge: an edge is a self loop or references a missing node.
	ErrInvalidEdge error = backend.ErrInvalidEdge

	// ErrNegativeLength: the reported tree length is negative.
	ErrNegativeLength error = backend.ErrNegativeLength
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = errors.New("geosteiner: native bindings not built")

	// ErrForeignFailure wraps a non-zero status code from the native library.
	ErrForeignFailure = errors.New("geosteiner: native call failed")

	// ErrSessionBusy is returned by Open while another Session is open.
	ErrSessionBusy = errors.New("geosteiner: session already open")

	// ErrSessionClosed is returned when using or closing a closed Session.
	ErrSessionClosed = errors.New("geosteiner: session closed")
)

// RemapError converts backend errors to public API errors. MarshalErrors pass
// through unchanged.
func RemapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backend.ErrNotBuilt):
		return ErrNotBuilt
	case errors.Is(err, backend.ErrForeignFailure):
		return &foreignError{err: err}
	}
	return err
}

// foreignError keeps the native status detail while matching
// ErrForeignFailure.
type foreignError struct {
	err error
}

func (e *foreignError) Error() string { return e.err.Error() }

func (e *foreignError) Is(target error) bool { return target == ErrForeignFailure }

func (e *foreignError) Unwrap() error { return e.err }

// IsIntegrityError reports whether err signals inconsistent data returned by
// the native routine, as opposed to a caller or lifecycle error.
func IsIntegrityError(err error) bool {
	var merr *MarshalError
	if !errors.As(err, &merr) {
		return false
	}
	return merr.Kind != KindSizeMismatch
}
