package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"intentd/pkg/types"
)

type mockService struct {
	mu       sync.Mutex
	ready    bool
	preds    []types.Prediction
	inferErr error
	status   types.StatusResponse
	models   []types.CachedModel
	listErr  error
	calls    int
	gotText  string
	gotLbls  []string
}

func (m *mockService) Ready() bool { return m.ready }

func (m *mockService) InferTop3(ctx context.Context, text string, labels []string) ([]types.Prediction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.gotText = text
	m.gotLbls = append([]string(nil), labels...)
	if m.inferErr != nil {
		return nil, m.inferErr
	}
	return m.preds, nil
}

func (m *mockService) Status() types.StatusResponse { return m.status }

func (m *mockService) ListModels() ([]types.CachedModel, error) { return m.models, m.listErr }

func (m *mockService) inferCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockAdmin adds the model management methods.
type mockAdmin struct {
	mockService
	loadErr  error
	loaded   string
	unloaded bool
}

func (m *mockAdmin) LoadModel(ctx context.Context, modelID string) (types.StatusResponse, error) {
	if m.loadErr != nil {
		return types.StatusResponse{}, m.loadErr
	}
	m.loaded = modelID
	return types.StatusResponse{State: "loaded", ModelID: modelID}, nil
}

func (m *mockAdmin) UnloadModel() { m.unloaded = true }

var testLabels = []string{"flight", "airfare", "ground service"}

func postJSON(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
