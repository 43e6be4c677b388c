package classifier

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"intentd/internal/artifact"
	"intentd/pkg/types"
)

// Pipeline is a loaded inference pipeline bound to one model.
type Pipeline struct {
	Kind    PipelineKind
	ModelID string
	Device  Device
	engine  Engine
}

// Classify runs the underlying engine.
func (p *Pipeline) Classify(ctx context.Context, text string, labels []string) ([]types.Prediction, error) {
	return p.engine.Classify(ctx, text, labels)
}

func (p *Pipeline) close() error {
	if p == nil || p.engine == nil {
		return nil
	}
	return p.engine.Close()
}

// Factory builds pipelines from artifacts.
type Factory struct {
	engines EngineFactory
	probe   DeviceProbe
	log     zerolog.Logger
}

// NewFactory returns a Factory using engines and the host device probe.
func NewFactory(engines EngineFactory, log zerolog.Logger) *Factory {
	return &Factory{engines: engines, probe: DefaultProbe(), log: log}
}

// WithProbe replaces the device probe.
func (f *Factory) WithProbe(p DeviceProbe) *Factory {
	f.probe = p
	return f
}

// Build constructs a pipeline of kind for art on the preferred device.
func (f *Factory) Build(art artifact.Artifact, kind PipelineKind) (*Pipeline, error) {
	switch kind {
	case KindZeroShot:
	default:
		return nil, &UnsupportedPipelineTypeError{Type: kind.String()}
	}
	if !art.Loaded() {
		return nil, fmt.Errorf("build %s pipeline: artifact %q is not loaded", kind, art.ModelID)
	}
	want := f.probe.Detect()
	eng, dev, err := f.engines.NewEngine(art, want)
	if err != nil {
		return nil, fmt.Errorf("build %s pipeline: %w", kind, err)
	}
	f.log.Info().Str("model", art.ModelID).Str("kind", kind.String()).Str("device", dev.String()).Msg("pipeline built")
	return &Pipeline{Kind: kind, ModelID: art.ModelID, Device: dev, engine: eng}, nil
}
