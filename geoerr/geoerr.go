// Package geoerr provides structured error types for geometry registries.
//
// This package defines sentinel errors for the small set of conditions the
// registries can report, plus a structured Error type that carries the
// failed operation and an error kind. It integrates with Go's standard
// errors package for wrapping and unwrapping.
package geoerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrDuplicateName indicates an add with a name that is already
	// registered and the overwrite flag not set.
	ErrDuplicateName = errors.New("name already in use")

	// ErrNotFound indicates a removal or lookup of a name that is not
	// registered.
	ErrNotFound = errors.New("name not found")

	// ErrInvalidGeometry indicates a 2D part that failed its validity check.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrNoDocument indicates a 3D export was requested before a serialized
	// document was attached.
	ErrNoDocument = errors.New("no serialized document attached")
)

// Error kinds categorize errors by their type.
const (
	// KindDuplicate represents add operations that would overwrite an
	// existing entry without permission.
	KindDuplicate = "duplicate_name"

	// KindNotFound represents operations on names that are not registered.
	KindNotFound = "not_found"

	// KindGeometry represents errors where a shape failed validation.
	KindGeometry = "geometry"

	// KindDocument represents errors in the attached serialized document.
	KindDocument = "document"

	// KindIO represents errors writing exported files.
	KindIO = "io"
)

// Error is a structured error type that wraps underlying errors with the
// operation that failed and the category of error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g., "Geo2D.AddPart").
	Op string

	// Kind categorizes the error (e.g., KindDuplicate, KindNotFound).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	Context map[string]any
}

// Error implements the error interface, returning a formatted message that
// includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("geodata: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("geodata: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("geodata: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on the
// underlying error or on the Kind/Op of another *Error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the provided context merged in.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewDuplicateName creates a KindDuplicate error for the given name.
func NewDuplicateName(op, name string) *Error {
	return &Error{
		Op:   op,
		Kind: KindDuplicate,
		Err:  fmt.Errorf("%w: %q", ErrDuplicateName, name),
	}
}

// NewNotFound creates a KindNotFound error for the given name.
func NewNotFound(op, name string) *Error {
	return &Error{
		Op:   op,
		Kind: KindNotFound,
		Err:  fmt.Errorf("%w: %q", ErrNotFound, name),
	}
}

// NewInvalidGeometry creates a KindGeometry error for the given part name.
func NewInvalidGeometry(op, name string) *Error {
	return &Error{
		Op:   op,
		Kind: KindGeometry,
		Err:  fmt.Errorf("%w: part %q", ErrInvalidGeometry, name),
	}
}

// NewNoDocument creates a KindDocument error for a missing serialized document.
func NewNoDocument(op string) *Error {
	return &Error{
		Op:   op,
		Kind: KindDocument,
		Err:  ErrNoDocument,
	}
}

// NewDocument creates a KindDocument error wrapping err.
func NewDocument(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindDocument,
		Err:  err,
	}
}

// NewIO creates a KindIO error wrapping err.
func NewIO(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindIO,
		Err:  err,
	}
}
