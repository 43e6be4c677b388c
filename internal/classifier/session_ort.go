//go:build ORT

package classifier

import (
	"fmt"
	"os"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/options"
	"github.com/rs/zerolog"
)

// newSession opens an ONNX Runtime session with the execution provider for
// dev. ONNXRUNTIME_LIB_PATH overrides the shared library location.
func newSession(dev Device, log zerolog.Logger) (*hugot.Session, Device, error) {
	var base []options.WithOption
	if p := os.Getenv("ONNXRUNTIME_LIB_PATH"); p != "" {
		base = append(base, options.WithOnnxLibraryPath(p))
	}
	opts := append([]options.WithOption(nil), base...)
	switch dev {
	case DeviceCUDA:
		opts = append(opts, options.WithCuda(map[string]string{"device_id": "0"}))
	case DeviceMPS:
		opts = append(opts, options.WithCoreML(0))
	}
	s, err := hugot.NewORTSession(opts...)
	if err != nil {
		if dev == DeviceCPU {
			return nil, dev, fmt.Errorf("open ort session: %w", err)
		}
		log.Warn().Err(err).Str("device", dev.String()).Msg("accelerator session failed; falling back to cpu")
		s, err = hugot.NewORTSession(base...)
		if err != nil {
			return nil, DeviceCPU, fmt.Errorf("open ort session: %w", err)
		}
		return s, DeviceCPU, nil
	}
	return s, dev, nil
}
