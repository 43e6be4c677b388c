package classifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"intentd/internal/artifact"
	"intentd/pkg/types"
)

// topN is the number of predictions returned by InferTop3.
const topN = 3

// Classifier holds at most one loaded pipeline and serves inference from it.
type Classifier struct {
	// loadMu serializes Load and Unload.
	loadMu sync.Mutex

	// mu guards the fields below. InferTop3 holds the read lock for the
	// whole inference so a pipeline is never closed under a request.
	mu       sync.RWMutex
	cur      *Pipeline
	loadedAt time.Time
	lastErr  string
	loads    uint64

	loader    ArtifactLoader
	factory   *Factory
	publisher EventPublisher
	log       zerolog.Logger
	startTime time.Time
}

// New constructs an unloaded Classifier.
func New(cfg Config) *Classifier {
	c := &Classifier{
		loader:    cfg.Loader,
		factory:   cfg.Factory,
		publisher: cfg.Publisher,
		log:       zerolog.Nop(),
		startTime: time.Now(),
	}
	if cfg.Logger != nil {
		c.log = cfg.Logger.With().Str("component", "classifier").Logger()
	}
	if c.loader == nil {
		c.loader = artifact.NewLoader(artifact.Options{Logger: cfg.Logger})
	}
	if c.factory == nil {
		c.factory = NewFactory(HugotEngineFactory{HypothesisTemplate: cfg.HypothesisTemplate, Logger: c.log}, c.log)
	}
	if c.publisher == nil {
		c.publisher = noopPublisher{}
	}
	readyGauge.Set(0)
	return c
}

// SetEventPublisher installs an event publisher. Nil restores the default.
func (c *Classifier) SetEventPublisher(p EventPublisher) {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()
	if p == nil {
		p = noopPublisher{}
	}
	c.publisher = p
}

// Ready reports whether a pipeline is loaded.
func (c *Classifier) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cur != nil
}

// Load makes modelID the current pipeline. Loading the model that is already
// current is a no-op and does not touch the artifact cache. On failure the
// previous state is kept and the error is returned; artifact failures are
// *artifact.FetchError.
func (c *Classifier) Load(ctx context.Context, modelID, cacheDir string, kind PipelineKind) (*Pipeline, error) {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	c.mu.RLock()
	cur := c.cur
	c.mu.RUnlock()
	if cur != nil && cur.ModelID == modelID && cur.Kind == kind {
		loadsTotal.WithLabelValues("noop").Inc()
		c.publisher.Publish(Event{Name: EventLoadNoop, ModelID: modelID})
		c.log.Debug().Str("model", modelID).Msg("model already loaded")
		return cur, nil
	}

	start := time.Now()
	c.publisher.Publish(Event{Name: EventLoadStart, ModelID: modelID, Fields: map[string]any{"kind": kind.String()}})
	c.log.Info().Str("model", modelID).Str("cache_dir", cacheDir).Str("kind", kind.String()).Msg("loading model")

	art, err := c.loader.Load(ctx, modelID, cacheDir)
	if err != nil {
		return nil, c.loadFailed(modelID, err)
	}
	p, err := c.factory.Build(art, kind)
	if err != nil {
		return nil, c.loadFailed(modelID, err)
	}

	c.mu.Lock()
	old := c.cur
	c.cur = p
	c.loadedAt = time.Now()
	c.lastErr = ""
	c.loads++
	c.mu.Unlock()
	readyGauge.Set(1)

	// Readers of old have drained: the write lock above waited for them.
	if err := old.close(); err != nil {
		c.log.Warn().Err(err).Str("model", old.ModelID).Msg("closing replaced pipeline")
	}
	loadsTotal.WithLabelValues("ok").Inc()
	dur := time.Since(start)
	c.publisher.Publish(Event{Name: EventLoadReady, ModelID: modelID, Fields: map[string]any{"device": p.Device.String(), "dur_ms": dur.Milliseconds()}})
	c.log.Info().Str("model", modelID).Str("device", p.Device.String()).Dur("dur", dur).Msg("model ready")
	return p, nil
}

func (c *Classifier) loadFailed(modelID string, err error) error {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
	loadsTotal.WithLabelValues("error").Inc()
	c.publisher.Publish(Event{Name: EventLoadFailed, ModelID: modelID, Fields: map[string]any{"error": err.Error()}})
	c.log.Error().Err(err).Str("model", modelID).Msg("model load failed")
	return err
}

// Unload drops the current pipeline, if any.
func (c *Classifier) Unload() {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	c.mu.Lock()
	old := c.cur
	c.cur = nil
	c.loadedAt = time.Time{}
	c.mu.Unlock()
	readyGauge.Set(0)

	modelID := ""
	if old != nil {
		modelID = old.ModelID
	}
	c.log.Warn().Str("model", modelID).Msg("classifier unloaded")
	if err := old.close(); err != nil {
		c.log.Warn().Err(err).Str("model", modelID).Msg("closing unloaded pipeline")
	}
	c.publisher.Publish(Event{Name: EventUnload, ModelID: modelID})
}

// InferTop3 scores text against labels and returns at most three
// predictions in descending score order. It requires a loaded zero-shot
// pipeline and a non-empty label list.
func (c *Classifier) InferTop3(ctx context.Context, text string, labels []string) ([]types.Prediction, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cur == nil {
		return nil, &PipelineTypeMismatchError{Want: KindZeroShot, Loaded: noneType}
	}
	if c.cur.Kind != KindZeroShot {
		return nil, &PipelineTypeMismatchError{Want: KindZeroShot, Loaded: c.cur.Kind.String()}
	}
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}

	start := time.Now()
	preds, err := c.cur.Classify(ctx, text, labels)
	inferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	if len(preds) > topN {
		preds = preds[:topN]
	}
	c.log.Info().Str("text", text).Interface("top3", preds).Msg("intent classified")
	return preds, nil
}
