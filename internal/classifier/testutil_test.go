package classifier

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"intentd/internal/artifact"
	"intentd/internal/artifact/artifacttest"
	"intentd/pkg/types"
)

// fakeLoader stages a complete artifact under cacheDir, or fails with err.
type fakeLoader struct {
	calls atomic.Int32
	err   error
}

func (l *fakeLoader) Load(ctx context.Context, modelID, cacheDir string) (artifact.Artifact, error) {
	l.calls.Add(1)
	if l.err != nil {
		return artifact.Artifact{}, &artifact.FetchError{ModelID: modelID, CacheDir: cacheDir, Err: l.err}
	}
	return artifacttest.Stage(cacheDir, modelID)
}

// fakeEngine scores labels by their position: the first label wins.
type fakeEngine struct {
	mu      sync.Mutex
	closed  bool
	block   chan struct{}
	entered chan struct{}
	seen    [][]string
}

func (e *fakeEngine) Classify(ctx context.Context, text string, labels []string) ([]types.Prediction, error) {
	if e.entered != nil {
		select {
		case e.entered <- struct{}{}:
		default:
		}
	}
	if e.block != nil {
		<-e.block
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, errors.New("engine closed")
	}
	e.seen = append(e.seen, append([]string(nil), labels...))
	out := make([]types.Prediction, len(labels))
	remaining := 1.0
	for i, l := range labels {
		s := remaining / 2
		if i == len(labels)-1 {
			s = remaining
		}
		remaining -= s
		out[i] = types.Prediction{Label: l, Score: s}
	}
	return out, nil
}

func (e *fakeEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

func (e *fakeEngine) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// fakeEngines records every engine it builds.
type fakeEngines struct {
	mu      sync.Mutex
	engines []*fakeEngine
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeEngines) NewEngine(art artifact.Artifact, dev Device) (Engine, Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := &fakeEngine{block: f.block, entered: f.entered}
	f.engines = append(f.engines, e)
	return e, dev, nil
}

func (f *fakeEngines) built() []*fakeEngine {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*fakeEngine(nil), f.engines...)
}

func cpuOnly() DeviceProbe { return DeviceProbe{} }

func newTestClassifier(loader *fakeLoader, engines *fakeEngines) (*Classifier, *MemoryPublisher) {
	pub := NewMemoryPublisher()
	c := New(Config{
		Loader:    loader,
		Factory:   NewFactory(engines, zerolog.Nop()).WithProbe(cpuOnly()),
		Publisher: pub,
	})
	return c, pub
}

var testLabels = []string{"flight", "airfare", "ground service", "airline", "abbreviation"}
