package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"intentd/internal/common/fsutil"
	"intentd/pkg/types"
)

// ListCached scans cacheDir for complete artifacts and describes them.
// A missing cache directory yields an empty list.
func ListCached(cacheDir, onnxFile string) ([]types.CachedModel, error) {
	arts, err := scanCache(cacheDir, onnxFile)
	if err != nil {
		return nil, err
	}
	out := make([]types.CachedModel, 0, len(arts))
	for _, a := range arts {
		out = append(out, types.CachedModel{
			ID:        a.ModelID,
			Path:      a.Dir,
			ModelFile: a.RelModelFile(),
			SizeMB:    fsutil.DirSizeMB(a.Dir),
		})
	}
	return out, nil
}

func scanCache(cacheDir, onnxFile string) ([]Artifact, error) {
	if onnxFile == "" {
		onnxFile = DefaultOnnxFile
	}
	base, err := fsutil.ExpandHome(cacheDir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var arts []Artifact
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(abs, e.Name())
		if art, ok := resolveDir(modelIDFromDir(dir), dir, onnxFile); ok {
			arts = append(arts, art)
		}
	}
	sort.Slice(arts, func(i, j int) bool { return arts[i].ModelID < arts[j].ModelID })
	return arts, nil
}

// modelIDFromDir prefers the recorded marker; otherwise the first "_" of the
// cache key is taken as the org separator.
func modelIDFromDir(dir string) string {
	if b, err := os.ReadFile(filepath.Join(dir, markerFile)); err == nil {
		if id := strings.TrimSpace(string(b)); id != "" {
			return id
		}
	}
	return strings.Replace(filepath.Base(dir), "_", "/", 1)
}
