package classifier

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intentd/internal/artifact"
	"intentd/internal/artifact/artifacttest"
)

func loadedArtifact(t *testing.T) artifact.Artifact {
	return artifacttest.MustStage(t, t.TempDir(), "org/m")
}

func TestDeviceProbeOrder(t *testing.T) {
	yes := func() bool { return true }
	no := func() bool { return false }
	tests := []struct {
		name  string
		probe DeviceProbe
		want  Device
	}{
		{"cuda wins", DeviceProbe{CUDA: yes, MPS: yes}, DeviceCUDA},
		{"mps second", DeviceProbe{CUDA: no, MPS: yes}, DeviceMPS},
		{"cpu fallback", DeviceProbe{CUDA: no, MPS: no}, DeviceCPU},
		{"nil probes", DeviceProbe{}, DeviceCPU},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.probe.Detect())
		})
	}
}

func TestFactoryBuild_UsesProbedDevice(t *testing.T) {
	var got Device
	engines := EngineFactoryFunc(func(art artifact.Artifact, dev Device) (Engine, Device, error) {
		got = dev
		return &fakeEngine{}, dev, nil
	})
	f := NewFactory(engines, zerolog.Nop()).WithProbe(DeviceProbe{CUDA: func() bool { return true }})
	p, err := f.Build(loadedArtifact(t), KindZeroShot)
	require.NoError(t, err)
	assert.Equal(t, DeviceCUDA, got)
	assert.Equal(t, DeviceCUDA, p.Device)
	assert.Equal(t, KindZeroShot, p.Kind)
	assert.Equal(t, "org/m", p.ModelID)
}

func TestFactoryBuild_Errors(t *testing.T) {
	engines := EngineFactoryFunc(func(art artifact.Artifact, dev Device) (Engine, Device, error) {
		return nil, dev, errors.New("no runtime")
	})
	f := NewFactory(engines, zerolog.Nop()).WithProbe(cpuOnly())

	_, err := f.Build(loadedArtifact(t), KindUnknown)
	assert.True(t, IsUnsupportedPipelineType(err))

	_, err = f.Build(artifact.Artifact{ModelID: "org/m"}, KindZeroShot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not loaded")

	_, err = f.Build(loadedArtifact(t), KindZeroShot)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no runtime")
}

func TestParsePipelineKind(t *testing.T) {
	for _, s := range []string{"zero-shot-classification", "Zero-Shot", " zeroshot "} {
		k, err := ParsePipelineKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, KindZeroShot, k)
	}
	_, err := ParsePipelineKind("text-generation")
	require.Error(t, err)
	assert.True(t, IsUnsupportedPipelineType(err))
	assert.Equal(t, "Unsupported pipeline type: text-generation", err.Error())
}

func TestHugotEngineFactory_RejectsUnloadedArtifact(t *testing.T) {
	_, _, err := HugotEngineFactory{}.NewEngine(artifact.Artifact{ModelID: "org/m"}, DeviceCPU)
	require.Error(t, err)
}

func TestErrorHelpersIgnoreOtherErrors(t *testing.T) {
	assert.False(t, IsPipelineTypeMismatch(errors.New("x")))
	assert.False(t, IsUnsupportedPipelineType(nil))
}
