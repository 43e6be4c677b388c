package artifact

import (
	"context"

	"github.com/knights-analytics/hugot"
)

// HubDownloader fetches artifacts from the Hugging Face hub.
type HubDownloader struct {
	OnnxFilePath string
	AuthToken    string
	Verbose      bool
}

// Download runs the hub download synchronously. The transfer cannot be
// interrupted; ctx is only checked before it starts.
func (h HubDownloader) Download(ctx context.Context, modelID, destDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	opts := hugot.NewDownloadOptions()
	if h.OnnxFilePath != "" {
		opts.OnnxFilePath = h.OnnxFilePath
	}
	if h.AuthToken != "" {
		opts.AuthToken = h.AuthToken
	}
	opts.Verbose = h.Verbose
	return hugot.DownloadModel(modelID, destDir, opts)
}
