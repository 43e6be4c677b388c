package artifact

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"intentd/internal/common/fsutil"
)

// Defaults applied when corresponding Options fields are unset.
const (
	defaultMaxElapsed      = 2 * time.Minute
	defaultInitialInterval = 1 * time.Second
	defaultMaxInterval     = 30 * time.Second
)

// Downloader fetches modelID into destDir and returns the directory the
// artifact was written to.
type Downloader interface {
	Download(ctx context.Context, modelID, destDir string) (string, error)
}

// DownloaderFunc adapts a function to Downloader.
type DownloaderFunc func(ctx context.Context, modelID, destDir string) (string, error)

func (f DownloaderFunc) Download(ctx context.Context, modelID, destDir string) (string, error) {
	return f(ctx, modelID, destDir)
}

// Options configures a Loader.
type Options struct {
	// Downloader used on cache misses. Defaults to the Hugging Face hub.
	Downloader Downloader
	// OnnxFile is the model file path inside an artifact directory.
	OnnxFile string
	// Offline disables remote fetches; a cache miss becomes a FetchError.
	Offline bool
	// Retry budget for remote fetches.
	MaxElapsed      time.Duration
	InitialInterval time.Duration
	Logger          *zerolog.Logger
}

// Loader resolves artifacts from a cache directory, fetching on a miss.
type Loader struct {
	dl              Downloader
	onnxFile        string
	offline         bool
	maxElapsed      time.Duration
	initialInterval time.Duration
	log             zerolog.Logger

	mu sync.Mutex
	// inflight holds one channel per cache entry with a download still
	// running; it is closed when that download returns.
	inflight map[string]chan struct{}
}

// NewLoader constructs a Loader, applying defaults for unset options.
func NewLoader(opts Options) *Loader {
	l := &Loader{
		dl:              opts.Downloader,
		onnxFile:        opts.OnnxFile,
		offline:         opts.Offline,
		maxElapsed:      opts.MaxElapsed,
		initialInterval: opts.InitialInterval,
		log:             zerolog.Nop(),
		inflight:        make(map[string]chan struct{}),
	}
	if l.dl == nil {
		l.dl = HubDownloader{OnnxFilePath: opts.OnnxFile, AuthToken: os.Getenv("HF_TOKEN")}
	}
	if l.onnxFile == "" {
		l.onnxFile = DefaultOnnxFile
	}
	if l.maxElapsed <= 0 {
		l.maxElapsed = defaultMaxElapsed
	}
	if l.initialInterval <= 0 {
		l.initialInterval = defaultInitialInterval
	}
	if opts.Logger != nil {
		l.log = opts.Logger.With().Str("component", "artifact").Logger()
	}
	return l
}

// Load returns the artifact for modelID, creating cacheDir if needed. The
// cache is consulted first; on a miss the artifact is fetched and persisted
// under cacheDir. Every failure is logged and returned as a *FetchError.
//
// Hub transfers cannot be interrupted. When ctx ends mid-download, Load
// returns but the transfer keeps writing into the cache entry; a later Load
// of the same model waits for it to finish before touching that entry.
// Transient fetch errors are retried with backoff; hub rejections such as
// unknown repos or auth failures are not.
func (l *Loader) Load(ctx context.Context, modelID, cacheDir string) (Artifact, error) {
	fail := func(err error) (Artifact, error) {
		fe := &FetchError{ModelID: modelID, CacheDir: cacheDir, Err: err}
		l.log.Error().Err(err).Str("model", modelID).Str("cache_dir", cacheDir).Msg("artifact load failed")
		return Artifact{}, fe
	}
	if strings.TrimSpace(modelID) == "" {
		return fail(errors.New("empty model id"))
	}
	dir, err := fsutil.EnsureDir(cacheDir)
	if err != nil {
		return fail(err)
	}
	local := LocalDir(dir, modelID)
	if err := l.awaitInflight(ctx, local); err != nil {
		return fail(err)
	}
	if art, ok := l.resolve(modelID, local); ok {
		l.log.Debug().Str("model", modelID).Str("dir", local).Msg("artifact cache hit")
		return art, nil
	}
	if l.offline {
		return fail(ErrNotCached)
	}
	if fsutil.PathExists(local) {
		l.log.Warn().Str("dir", local).Msg("removing incomplete cache entry before fetch")
		if err := os.RemoveAll(local); err != nil {
			return fail(err)
		}
	}

	start := time.Now()
	var fetched string
	op := func() error {
		p, err := l.download(ctx, modelID, dir, local)
		if err != nil {
			if isPermanent(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		fetched = p
		return nil
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = l.initialInterval
	b.MaxInterval = defaultMaxInterval
	b.MaxElapsedTime = l.maxElapsed
	notify := func(err error, wait time.Duration) {
		l.log.Warn().Err(err).Str("model", modelID).Dur("retry_in", wait).Msg("artifact fetch failed, retrying")
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return fail(err)
	}

	art, ok := l.resolve(modelID, fetched)
	if !ok {
		if art, ok = l.resolve(modelID, local); !ok {
			return fail(ErrIncomplete)
		}
	}
	if err := os.WriteFile(filepath.Join(art.Dir, markerFile), []byte(modelID), 0o644); err != nil {
		l.log.Warn().Err(err).Str("dir", art.Dir).Msg("could not write cache marker")
	}
	l.log.Info().Str("model", modelID).Str("dir", art.Dir).Dur("dur", time.Since(start)).Msg("artifact fetched")
	return art, nil
}

// download runs one fetch attempt in the background and registers it under
// key until the downloader returns, even if ctx ends first.
func (l *Loader) download(ctx context.Context, modelID, dir, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	type result struct {
		path string
		err  error
	}
	res := make(chan result, 1)
	done := make(chan struct{})
	l.mu.Lock()
	l.inflight[key] = done
	l.mu.Unlock()
	go func() {
		p, err := l.dl.Download(ctx, modelID, dir)
		res <- result{path: p, err: err}
		l.mu.Lock()
		if l.inflight[key] == done {
			delete(l.inflight, key)
		}
		l.mu.Unlock()
		close(done)
	}()
	select {
	case r := <-res:
		return r.path, r.err
	case <-ctx.Done():
		l.log.Warn().Str("model", modelID).Msg("fetch abandoned; transfer continues in background")
		return "", ctx.Err()
	}
}

// awaitInflight blocks until no download for key is running.
func (l *Loader) awaitInflight(ctx context.Context, key string) error {
	l.mu.Lock()
	done := l.inflight[key]
	l.mu.Unlock()
	if done == nil {
		return nil
	}
	l.log.Info().Str("dir", key).Msg("waiting for an earlier fetch to finish")
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// permanentMarkers are hub responses that retrying cannot fix.
var permanentMarkers = []string{
	"401", "403", "404",
	"unauthorized", "forbidden", "not found", "gated", "invalid repo", "invalid model",
}

// isPermanent reports whether a fetch error should stop retries.
func isPermanent(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pe *backoff.PermanentError
	if errors.As(err, &pe) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, m := range permanentMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// Cached lists the complete artifacts present under cacheDir.
func (l *Loader) Cached(cacheDir string) ([]Artifact, error) {
	return scanCache(cacheDir, l.onnxFile)
}

// resolve builds an Artifact from dir if both files are present.
func (l *Loader) resolve(modelID, dir string) (Artifact, bool) {
	return resolveDir(modelID, dir, l.onnxFile)
}

func resolveDir(modelID, dir, onnxFile string) (Artifact, bool) {
	if dir == "" {
		return Artifact{}, false
	}
	art := Artifact{ModelID: modelID, Dir: dir, TokenizerFile: filepath.Join(dir, TokenizerFile)}
	if p := filepath.Join(dir, filepath.FromSlash(onnxFile)); fsutil.IsFile(p) {
		art.ModelFile = p
	} else {
		art.ModelFile = firstOnnx(dir)
	}
	return art, art.Loaded()
}

// firstOnnx returns the first *.onnx file under dir in lexical walk order.
func firstOnnx(dir string) string {
	var found string
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".onnx") {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	return found
}
