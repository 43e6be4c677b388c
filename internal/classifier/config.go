package classifier

import (
	"context"

	"github.com/rs/zerolog"

	"intentd/internal/artifact"
)

// Config encapsulates the collaborators of a Classifier. Unset fields fall
// back to production defaults.
type Config struct {
	// Loader resolves model artifacts. Defaults to an online artifact.Loader.
	Loader ArtifactLoader
	// Factory builds pipelines. Defaults to a hugot-backed factory.
	Factory *Factory
	// HypothesisTemplate for the default factory.
	HypothesisTemplate string
	Publisher          EventPublisher
	Logger             *zerolog.Logger
}

// ArtifactLoader is the subset of *artifact.Loader the classifier needs.
type ArtifactLoader interface {
	Load(ctx context.Context, modelID, cacheDir string) (artifact.Artifact, error)
}
