// Package artifacttest stages complete artifacts on disk for tests that
// need a loaded artifact without touching the hub.
package artifacttest

import (
	"os"
	"path/filepath"
	"testing"

	"intentd/internal/artifact"
)

// Stage writes a placeholder model and tokenizer under the cache entry for
// modelID in cacheDir and returns the resulting artifact.
func Stage(cacheDir, modelID string) (artifact.Artifact, error) {
	dir := artifact.LocalDir(cacheDir, modelID)
	art := artifact.Artifact{
		ModelID:       modelID,
		Dir:           dir,
		ModelFile:     filepath.Join(dir, filepath.FromSlash(artifact.DefaultOnnxFile)),
		TokenizerFile: filepath.Join(dir, artifact.TokenizerFile),
	}
	for _, p := range []string{art.ModelFile, art.TokenizerFile} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return artifact.Artifact{}, err
		}
		if err := os.WriteFile(p, []byte("{}"), 0o644); err != nil {
			return artifact.Artifact{}, err
		}
	}
	return art, nil
}

// MustStage is Stage for a test that cannot continue without the artifact.
func MustStage(t testing.TB, cacheDir, modelID string) artifact.Artifact {
	t.Helper()
	art, err := Stage(cacheDir, modelID)
	if err != nil {
		t.Fatalf("stage artifact %s: %v", modelID, err)
	}
	if !art.Loaded() {
		t.Fatalf("staged artifact %s is not loaded", modelID)
	}
	return art
}
