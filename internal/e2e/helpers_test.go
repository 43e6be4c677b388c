package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"intentd/internal/artifact"
	"intentd/internal/artifact/artifacttest"
	"intentd/internal/classifier"
	"intentd/internal/httpapi"
	"intentd/pkg/types"
)

var atisLabels = []string{"flight", "flight time", "flight number", "airfare", "ground service", "airline"}

// keywordEngine scores labels by how many of their words appear in the text.
type keywordEngine struct{}

func (keywordEngine) Classify(ctx context.Context, text string, labels []string) ([]types.Prediction, error) {
	return scoreByKeywords(text, labels), nil
}

func (keywordEngine) Close() error { return nil }

// stubLoader stages every model id as a complete artifact in the cache.
type stubLoader struct{ calls int }

func (l *stubLoader) Load(ctx context.Context, modelID, cacheDir string) (artifact.Artifact, error) {
	l.calls++
	if modelID == "org/missing" {
		return artifact.Artifact{}, &artifact.FetchError{ModelID: modelID, CacheDir: cacheDir, Err: artifact.ErrNotCached}
	}
	return artifacttest.Stage(cacheDir, modelID)
}

// adminService exposes a Classifier with model management, as the binary does.
type adminService struct {
	*classifier.Classifier
	cacheDir string
}

func (s *adminService) ListModels() ([]types.CachedModel, error) {
	return artifact.ListCached(s.cacheDir, "")
}

func (s *adminService) LoadModel(ctx context.Context, modelID string) (types.StatusResponse, error) {
	if _, err := s.Load(ctx, modelID, s.cacheDir, classifier.KindZeroShot); err != nil {
		return types.StatusResponse{}, err
	}
	return s.Status(), nil
}

func (s *adminService) UnloadModel() { s.Unload() }

func newStack(t testing.TB) (*httptest.Server, *adminService, *stubLoader) {
	t.Helper()
	loader := &stubLoader{}
	engines := classifier.EngineFactoryFunc(func(art artifact.Artifact, dev classifier.Device) (classifier.Engine, classifier.Device, error) {
		return keywordEngine{}, dev, nil
	})
	clf := classifier.New(classifier.Config{
		Loader:  loader,
		Factory: classifier.NewFactory(engines, zerolog.Nop()).WithProbe(classifier.DeviceProbe{}),
	})
	svc := &adminService{Classifier: clf, cacheDir: t.TempDir()}
	httpapi.SetLogger(zerolog.Nop())
	httpapi.SetAdminEnabled(true)
	t.Cleanup(func() { httpapi.SetAdminEnabled(false) })
	srv := httptest.NewServer(httpapi.NewMux(svc, atisLabels))
	t.Cleanup(srv.Close)
	return srv, svc, loader
}

func do(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}
