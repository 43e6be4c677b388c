package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"intentd/internal/artifact"
	"intentd/internal/artifact/artifacttest"
	"intentd/internal/classifier"
	"intentd/pkg/types"
)

type stubEngine struct{}

func (stubEngine) Classify(ctx context.Context, text string, labels []string) ([]types.Prediction, error) {
	out := make([]types.Prediction, len(labels))
	for i, l := range labels {
		out[i] = types.Prediction{Label: l, Score: 1 / float64(i+2)}
	}
	return out, nil
}

func (stubEngine) Close() error { return nil }

func newStubClassifier(loadErr error) *classifier.Classifier {
	return classifier.New(classifier.Config{
		Loader: loaderFunc(func(ctx context.Context, modelID, cacheDir string) (artifact.Artifact, error) {
			if loadErr != nil {
				return artifact.Artifact{}, &artifact.FetchError{ModelID: modelID, Err: loadErr}
			}
			return artifacttest.Stage(cacheDir, modelID)
		}),
		Factory: classifier.NewFactory(classifier.EngineFactoryFunc(func(art artifact.Artifact, dev classifier.Device) (classifier.Engine, classifier.Device, error) {
			return stubEngine{}, dev, nil
		}), zerolog.Nop()).WithProbe(classifier.DeviceProbe{}),
	})
}

type loaderFunc func(ctx context.Context, modelID, cacheDir string) (artifact.Artifact, error)

func (f loaderFunc) Load(ctx context.Context, modelID, cacheDir string) (artifact.Artifact, error) {
	return f(ctx, modelID, cacheDir)
}

func TestService_LoadUnloadAndInfer(t *testing.T) {
	svc := newService(newStubClassifier(nil), settings{CacheDir: t.TempDir(), Pipeline: classifier.KindZeroShot})

	st, err := svc.LoadModel(context.Background(), "org/m")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.State != "loaded" || st.ModelID != "org/m" {
		t.Fatalf("status=%+v", st)
	}
	preds, err := svc.InferTop3(context.Background(), "hi", []string{"a", "b", "c", "d"})
	if err != nil || len(preds) != 3 {
		t.Fatalf("preds=%v err=%v", preds, err)
	}
	svc.UnloadModel()
	if svc.Ready() {
		t.Fatal("expected unloaded")
	}
}

func TestService_LoadFailure(t *testing.T) {
	svc := newService(newStubClassifier(errors.New("404")), settings{CacheDir: t.TempDir(), Pipeline: classifier.KindZeroShot})
	if _, err := svc.LoadModel(context.Background(), "org/x"); !artifact.IsFetchFailed(err) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestService_ListModels(t *testing.T) {
	cache := t.TempDir()
	if err := os.MkdirAll(filepath.Join(cache, "org_m"), 0o755); err != nil {
		t.Fatal(err)
	}
	svc := newService(newStubClassifier(nil), settings{CacheDir: cache})
	models, err := svc.ListModels()
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 0 {
		t.Fatalf("incomplete artifact listed: %+v", models)
	}
}
