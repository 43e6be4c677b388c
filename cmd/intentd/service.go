package main

import (
	"context"

	"intentd/internal/artifact"
	"intentd/internal/classifier"
	"intentd/pkg/types"
)

// service adapts a Classifier to the HTTP layer.
type service struct {
	*classifier.Classifier
	cacheDir string
	onnxFile string
	kind     classifier.PipelineKind
}

func newService(c *classifier.Classifier, s settings) *service {
	return &service{Classifier: c, cacheDir: s.CacheDir, onnxFile: s.OnnxFile, kind: s.Pipeline}
}

func (s *service) ListModels() ([]types.CachedModel, error) {
	return artifact.ListCached(s.cacheDir, s.onnxFile)
}

func (s *service) LoadModel(ctx context.Context, modelID string) (types.StatusResponse, error) {
	if _, err := s.Load(ctx, modelID, s.cacheDir, s.kind); err != nil {
		return types.StatusResponse{}, err
	}
	return s.Status(), nil
}

func (s *service) UnloadModel() { s.Unload() }
