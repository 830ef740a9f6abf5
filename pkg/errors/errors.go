// Package errors provides structured error handling for the planar kernel.
//
// Every fallible geometry operation returns a *GeomError whose Kind tells the
// caller which class of input was rejected and whose Err wraps one of the
// sentinels below, so both errors.As and errors.Is work on it.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDomain indicates degenerate geometry: a non-positive extent or
	// radius, a mutation that would break rectangle corner ordering, or
	// rescaling a zero-length vector.
	KindDomain
	// KindConversion indicates a foreign value that has no kernel
	// representation. Scalar kind conversions are total and never
	// produce it.
	KindConversion
)

func (k ErrorKind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindConversion:
		return "conversion"
	default:
		return "unknown"
	}
}

var (
	// ErrDegenerate reports a width, height or radius that is not strictly
	// positive.
	ErrDegenerate = stderrors.New("degenerate geometry")
	// ErrZeroVector reports an attempt to change the magnitude of a
	// zero-length vector.
	ErrZeroVector = stderrors.New("cannot rescale zero-length vector")
)

// GeomError represents a structured error raised by a geometry operation.
type GeomError struct {
	// Op is the operation that failed (e.g., "geom.Rect.SetTop").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *GeomError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GeomError) Unwrap() error {
	return e.Err
}

// Domain returns a KindDomain error for op wrapping err.
func Domain(op string, err error) *GeomError {
	return &GeomError{Op: op, Kind: KindDomain, Err: err}
}

// Domainf returns a KindDomain error for op whose cause wraps ErrDegenerate
// with a formatted detail message.
func Domainf(op, format string, args ...any) *GeomError {
	detail := fmt.Sprintf(format, args...)
	return Domain(op, fmt.Errorf("%w: %s", ErrDegenerate, detail))
}

// Conversion returns a KindConversion error for op wrapping err.
func Conversion(op string, err error) *GeomError {
	return &GeomError{Op: op, Kind: KindConversion, Err: err}
}

// KindOf reports the kind of the first GeomError in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) ErrorKind {
	var ge *GeomError
	if stderrors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

// IsDomain reports whether err is a KindDomain GeomError.
func IsDomain(err error) bool {
	return KindOf(err) == KindDomain
}
