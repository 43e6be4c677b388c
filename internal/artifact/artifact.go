// Package artifact obtains model artifacts (ONNX model + tokenizer) for a
// model id, preferring a local cache directory and fetching from the
// Hugging Face hub on a miss.
package artifact

import (
	"path/filepath"
	"strings"

	"intentd/internal/common/fsutil"
)

const (
	// TokenizerFile is the tokenizer definition every artifact must carry.
	TokenizerFile = "tokenizer.json"
	// DefaultOnnxFile is the model file looked up inside an artifact directory.
	DefaultOnnxFile = "onnx/model.onnx"

	// markerFile records the original model id inside a cache entry.
	markerFile = ".intentd-model"
)

// Artifact is the pair of a model file and its tokenizer on disk.
type Artifact struct {
	ModelID       string
	Dir           string
	ModelFile     string
	TokenizerFile string
}

// Loaded reports whether both the model and the tokenizer are present.
// A partial artifact is never considered loaded.
func (a Artifact) Loaded() bool {
	if a.ModelFile == "" || a.TokenizerFile == "" {
		return false
	}
	return fsutil.IsFile(a.ModelFile) && fsutil.IsFile(a.TokenizerFile)
}

// RelModelFile returns ModelFile relative to Dir (e.g. "onnx/model.onnx").
func (a Artifact) RelModelFile() string {
	rel, err := filepath.Rel(a.Dir, a.ModelFile)
	if err != nil {
		return filepath.Base(a.ModelFile)
	}
	return filepath.ToSlash(rel)
}

// CacheKey sanitizes a model id into a single directory name.
// "org/name" becomes "org_name", matching the hub downloader layout.
func CacheKey(modelID string) string {
	return strings.ReplaceAll(strings.TrimSpace(modelID), "/", "_")
}

// LocalDir is the cache entry directory for modelID under cacheDir.
func LocalDir(cacheDir, modelID string) string {
	return filepath.Join(cacheDir, CacheKey(modelID))
}
