package geom

import "github.com/pkg/errors"

// ReadError reports malformed or truncated input encountered while
// decoding EWKB or TWKB bytes.
type ReadError struct{ err error }

// WriteError reports a failure writing to the destination sink. Partial
// output on a failed write is undefined; callers must discard the sink.
type WriteError struct{ err error }

// OtherError reports an unsupported feature (GeometryCollection
// encode/decode) or a failure surfaced by an external collaborator, such as
// the reprojection transform.
type OtherError struct{ err error }

func NewReadError(msg string) *ReadError   { return &ReadError{err: errors.New(msg)} }
func NewWriteError(msg string) *WriteError { return &WriteError{err: errors.New(msg)} }
func NewOtherError(msg string) *OtherError { return &OtherError{err: errors.New(msg)} }

// WrapReadError wraps cause with msg, preserving it for errors.Unwrap,
// errors.Is and errors.As. The returned *ReadError has no Cause method, so
// pkg/errors' Cause stops at it rather than reaching cause.
func WrapReadError(cause error, msg string) *ReadError {
	if cause == nil {
		return NewReadError(msg)
	}
	return &ReadError{err: errors.Wrap(cause, msg)}
}

func WrapWriteError(cause error, msg string) *WriteError {
	if cause == nil {
		return NewWriteError(msg)
	}
	return &WriteError{err: errors.Wrap(cause, msg)}
}

func WrapOtherError(cause error, msg string) *OtherError {
	if cause == nil {
		return NewOtherError(msg)
	}
	return &OtherError{err: errors.Wrap(cause, msg)}
}

func (e *ReadError) Error() string  { return "geowkb: read: " + e.err.Error() }
func (e *WriteError) Error() string { return "geowkb: write: " + e.err.Error() }
func (e *OtherError) Error() string { return "geowkb: " + e.err.Error() }

func (e *ReadError) Unwrap() error  { return e.err }
func (e *WriteError) Unwrap() error { return e.err }
func (e *OtherError) Unwrap() error { return e.err }

// ErrUnsupportedGeometryCollection is wrapped by the OtherError returned
// whenever a reader's or writer's top-level dispatch is asked to produce a
// concrete GeometryCollection value. GeometryCollection is recognized at
// the wire-format level (its type code parses cleanly) but never decoded or
// encoded into a concrete value; see spec Non-goals.
var ErrUnsupportedGeometryCollection = errors.New("not implemented for GeometryCollection")
