package classifier

import (
	"strings"
	"time"
)

// PipelineKind enumerates the inference pipelines the factory can build.
type PipelineKind int

const (
	KindUnknown PipelineKind = iota
	KindZeroShot
)

// String returns the canonical pipeline type name.
func (k PipelineKind) String() string {
	switch k {
	case KindZeroShot:
		return "zero-shot-classification"
	default:
		return "unknown"
	}
}

// displayName is the short upper-case form used in user-facing errors.
func (k PipelineKind) displayName() string {
	switch k {
	case KindZeroShot:
		return "ZERO-SHOT"
	default:
		return strings.ToUpper(k.String())
	}
}

// ParsePipelineKind maps a pipeline type name to a PipelineKind.
func ParsePipelineKind(s string) (PipelineKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero-shot-classification", "zero-shot", "zeroshot":
		return KindZeroShot, nil
	default:
		return KindUnknown, &UnsupportedPipelineTypeError{Type: s}
	}
}

// Device is the compute device a pipeline runs on.
type Device string

const (
	DeviceCPU  Device = "cpu"
	DeviceCUDA Device = "cuda"
	DeviceMPS  Device = "mps"
)

func (d Device) String() string { return string(d) }

// State of the classifier.
type State string

const (
	StateUnloaded State = "unloaded"
	StateLoaded   State = "loaded"
)

// Snapshot is a point-in-time copy of the classifier state.
type Snapshot struct {
	State     State
	ModelID   string
	Kind      PipelineKind
	Device    Device
	LoadedAt  time.Time
	LastError string
	Loads     uint64
}
