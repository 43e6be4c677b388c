package classifier

import (
	"context"
	"sort"

	"intentd/internal/artifact"
	"intentd/pkg/types"
)

// Engine scores a text against candidate labels. Results are ordered by
// descending score. Implementations must be safe for concurrent use.
type Engine interface {
	Classify(ctx context.Context, text string, labels []string) ([]types.Prediction, error)
	// Close releases runtime resources. The engine must not be used afterwards.
	Close() error
}

// EngineFactory constructs an Engine for an artifact on the requested device.
// It returns the device the engine actually runs on.
type EngineFactory interface {
	NewEngine(art artifact.Artifact, dev Device) (Engine, Device, error)
}

// EngineFactoryFunc adapts a function to EngineFactory.
type EngineFactoryFunc func(art artifact.Artifact, dev Device) (Engine, Device, error)

func (f EngineFactoryFunc) NewEngine(art artifact.Artifact, dev Device) (Engine, Device, error) {
	return f(art, dev)
}

// rankPredictions orders preds by descending score. Equal scores keep the
// order of their labels in candidates; unknown labels sort last.
func rankPredictions(preds []types.Prediction, candidates []string) []types.Prediction {
	pos := make(map[string]int, len(candidates))
	for i, l := range candidates {
		if _, dup := pos[l]; !dup {
			pos[l] = i
		}
	}
	index := func(l string) int {
		if i, ok := pos[l]; ok {
			return i
		}
		return len(candidates)
	}
	sort.SliceStable(preds, func(i, j int) bool {
		if preds[i].Score != preds[j].Score {
			return preds[i].Score > preds[j].Score
		}
		return index(preds[i].Label) < index(preds[j].Label)
	})
	return preds
}
