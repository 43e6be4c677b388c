package artifact

import (
	"errors"
	"fmt"
)

// FetchError reports that an artifact could not be obtained from the cache
// or the remote hub. The classifier treats it as "not loaded".
type FetchError struct {
	ModelID  string
	CacheDir string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("unable to load model %q from the hub or cache %q: %v", e.ModelID, e.CacheDir, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchFailed reports whether err is (or wraps) a FetchError.
func IsFetchFailed(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// ErrNotCached is wrapped by FetchError when offline mode finds no cache entry.
var ErrNotCached = errors.New("model not present in cache and offline mode is enabled")

// ErrIncomplete is wrapped by FetchError when a cache entry lacks a tokenizer or model file.
var ErrIncomplete = errors.New("artifact is incomplete")
