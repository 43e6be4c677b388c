package classifier

import (
	"errors"
	"fmt"
)

// noneType names the absent pipeline in mismatch errors.
const noneType = "NoneType"

// PipelineTypeMismatchError is returned when inference is requested from a
// pipeline of a different kind, or when no pipeline is loaded.
type PipelineTypeMismatchError struct {
	Want   PipelineKind
	Loaded string
}

func (e *PipelineTypeMismatchError) Error() string {
	return fmt.Sprintf("Attempt to infer using a %s pipeline when '%s' is loaded.", e.Want.displayName(), e.Loaded)
}

// IsPipelineTypeMismatch reports whether err is a *PipelineTypeMismatchError.
func IsPipelineTypeMismatch(err error) bool {
	var e *PipelineTypeMismatchError
	return errors.As(err, &e)
}

// UnsupportedPipelineTypeError is returned by the factory for pipeline kinds
// it cannot build.
type UnsupportedPipelineTypeError struct{ Type string }

func (e *UnsupportedPipelineTypeError) Error() string {
	return "Unsupported pipeline type: " + e.Type
}

// IsUnsupportedPipelineType reports whether err is an *UnsupportedPipelineTypeError.
func IsUnsupportedPipelineType(err error) bool {
	var e *UnsupportedPipelineTypeError
	return errors.As(err, &e)
}

// ErrNoLabels is returned by InferTop3 when no candidate labels are given.
var ErrNoLabels = errors.New("no candidate labels")
