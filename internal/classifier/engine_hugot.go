package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/rs/zerolog"

	"intentd/internal/artifact"
	"intentd/pkg/types"
)

// DefaultHypothesisTemplate is the NLI hypothesis each label is substituted into.
const DefaultHypothesisTemplate = "This example is {}."

// HugotEngineFactory builds zero-shot engines on a hugot session.
type HugotEngineFactory struct {
	HypothesisTemplate string
	Logger             zerolog.Logger
}

// NewEngine opens a session for dev and binds it to the artifact. Pipelines
// are created lazily on first use of each label set.
func (f HugotEngineFactory) NewEngine(art artifact.Artifact, dev Device) (Engine, Device, error) {
	if !art.Loaded() {
		return nil, dev, fmt.Errorf("artifact %q is not loaded", art.ModelID)
	}
	session, effective, err := newSession(dev, f.Logger)
	if err != nil {
		return nil, dev, err
	}
	tmpl := f.HypothesisTemplate
	if tmpl == "" {
		tmpl = DefaultHypothesisTemplate
	}
	return &hugotEngine{
		session:  session,
		art:      art,
		template: tmpl,
		pipes:    make(map[string]*pipelines.ZeroShotClassificationPipeline),
	}, effective, nil
}

// hugotEngine wraps a session and one zero-shot pipeline per label set.
// Runs are serialized on the engine.
type hugotEngine struct {
	mu       sync.Mutex
	session  *hugot.Session
	art      artifact.Artifact
	template string
	pipes    map[string]*pipelines.ZeroShotClassificationPipeline
	closed   bool
}

func (e *hugotEngine) Classify(ctx context.Context, text string, labels []string) ([]types.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, errors.New("engine closed")
	}
	p, err := e.pipelineFor(labels)
	if err != nil {
		return nil, err
	}
	out, err := p.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("run zero-shot pipeline: %w", err)
	}
	if len(out.ClassificationOutputs) == 0 {
		return nil, errors.New("zero-shot pipeline returned no output")
	}
	sorted := out.ClassificationOutputs[0].SortedValues
	preds := make([]types.Prediction, 0, len(sorted))
	for _, kv := range sorted {
		preds = append(preds, types.Prediction{Label: kv.Key, Score: kv.Value})
	}
	// hugot sorts scores unstably; ties fall back to candidate order.
	return rankPredictions(preds, labels), nil
}

// pipelineFor returns the cached pipeline for labels, creating it on a miss.
// Callers hold e.mu.
func (e *hugotEngine) pipelineFor(labels []string) (*pipelines.ZeroShotClassificationPipeline, error) {
	key := strings.Join(labels, "\x00")
	if p, ok := e.pipes[key]; ok {
		return p, nil
	}
	cfg := hugot.ZeroShotClassificationConfig{
		ModelPath:    e.art.Dir,
		Name:         fmt.Sprintf("zero-shot-%d", len(e.pipes)),
		OnnxFilename: e.art.RelModelFile(),
		Options: []hugot.ZeroShotClassificationOption{
			pipelines.WithLabels(append([]string(nil), labels...)),
			pipelines.WithHypothesisTemplate(e.template),
			pipelines.WithMultilabel(false),
		},
	}
	p, err := hugot.NewPipeline(e.session, cfg)
	if err != nil {
		return nil, fmt.Errorf("create zero-shot pipeline: %w", err)
	}
	e.pipes[key] = p
	return p, nil
}

func (e *hugotEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.pipes = nil
	return e.session.Destroy()
}
