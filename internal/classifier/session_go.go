//go:build !ORT

package classifier

import (
	"fmt"

	"github.com/knights-analytics/hugot"
	"github.com/rs/zerolog"
)

// newSession opens a pure Go session. Accelerators are unavailable without
// ONNX Runtime, so the effective device is always the CPU.
func newSession(dev Device, log zerolog.Logger) (*hugot.Session, Device, error) {
	if dev != DeviceCPU {
		log.Warn().Str("device", dev.String()).Msg("accelerator detected but binary built without ONNX Runtime (-tags=ORT); using cpu")
	}
	s, err := hugot.NewGoSession()
	if err != nil {
		return nil, DeviceCPU, fmt.Errorf("open go session: %w", err)
	}
	return s, DeviceCPU, nil
}
