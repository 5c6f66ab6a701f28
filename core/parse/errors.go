package parse

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three ways extraction can fail. Use errors.Is on
// any error returned by this package to classify it.
var (
	// ErrNoCandidateFound means the text holds no JSON-like region at all.
	ErrNoCandidateFound = errors.New("parse: no JSON candidate found")
	// ErrAllDecodeAttemptsFailed means a candidate existed but neither the raw
	// span nor any repaired variant is valid JSON.
	ErrAllDecodeAttemptsFailed = errors.New("parse: all decode attempts failed")
	// ErrShapeMismatch means the JSON decoded but does not have the expected
	// shape or lacks a required field.
	ErrShapeMismatch = errors.New("parse: shape mismatch")
)

// FailureKind tags an ExtractionError.
type FailureKind int

const (
	NoCandidateFound FailureKind = iota + 1
	AllDecodeAttemptsFailed
	ShapeMismatch
)

// String returns the name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case NoCandidateFound:
		return "NoCandidateFound"
	case AllDecodeAttemptsFailed:
		return "AllDecodeAttemptsFailed"
	case ShapeMismatch:
		return "ShapeMismatch"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

func (k FailureKind) sentinel() error {
	switch k {
	case NoCandidateFound:
		return ErrNoCandidateFound
	case AllDecodeAttemptsFailed:
		return ErrAllDecodeAttemptsFailed
	case ShapeMismatch:
		return ErrShapeMismatch
	default:
		return nil
	}
}

// ExtractionError is the outcome of a failed extraction. It keeps the
// complete raw model output for diagnostics and never carries a partial
// record.
type ExtractionError struct {
	Kind FailureKind
	// Raw is the unmodified text the extraction was attempted on.
	Raw string
	// Err holds the underlying cause, if any (last decode error, missing field).
	Err error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Err != nil {
		if errors.Is(e.Err, e.Kind.sentinel()) {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %v", e.Kind.sentinel(), e.Err)
	}
	return e.Kind.sentinel().Error()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *ExtractionError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newExtractionError(kind FailureKind, raw string, cause error) *ExtractionError {
	return &ExtractionError{Kind: kind, Raw: raw, Err: cause}
}

// MissingField builds the cause used by normalizers when a required field is
// absent or empty.
func MissingField(field string) error {
	return fmt.Errorf("%w: required field %q missing or empty", ErrShapeMismatch, field)
}

// UnexpectedKind builds the cause used by normalizers when a value has the
// wrong JSON kind.
func UnexpectedKind(what string, want Kind, got Value) error {
	return fmt.Errorf("%w: %s must be %s, got %s", ErrShapeMismatch, what, want, KindOf(got))
}
