package classifier

import (
	"os/exec"
	"runtime"

	"intentd/internal/common/fsutil"
)

// DeviceProbe reports which accelerators are present. Probes must not have
// side effects.
type DeviceProbe struct {
	CUDA func() bool
	MPS  func() bool
}

// DefaultProbe inspects the host.
func DefaultProbe() DeviceProbe {
	return DeviceProbe{CUDA: cudaAvailable, MPS: mpsAvailable}
}

// Detect picks the preferred device: CUDA, then Apple silicon, then CPU.
func (p DeviceProbe) Detect() Device {
	if p.CUDA != nil && p.CUDA() {
		return DeviceCUDA
	}
	if p.MPS != nil && p.MPS() {
		return DeviceMPS
	}
	return DeviceCPU
}

func cudaAvailable() bool {
	if fsutil.PathExists("/dev/nvidiactl") {
		return true
	}
	_, err := exec.LookPath("nvidia-smi")
	return err == nil
}

func mpsAvailable() bool {
	return runtime.GOOS == "darwin" && runtime.GOARCH == "arm64"
}
