// Package classifier owns the zero-shot intent classification pipeline and
// its lifecycle. It is structured into small files by concern:
//
//   - classifier.go: Classifier type, Load/Unload/InferTop3 and status.
//   - types.go: PipelineKind, Device, State and Snapshot.
//   - errors.go: error types and helpers (IsPipelineTypeMismatch, IsUnsupportedPipelineType).
//   - pipeline.go: Pipeline and the Factory that builds one from an artifact.
//   - device.go: accelerator probing (CUDA, then Apple silicon, then CPU).
//   - engine.go: Engine abstraction over the inference runtime.
//   - engine_hugot.go: hugot-backed zero-shot engine.
//   - events.go, eventpub_memory.go: lifecycle events.
//   - metrics.go: Prometheus collectors.
//
// Build tags and runtimes:
//
//   - Default build: pure Go hugot session (session_go.go). Inference runs on
//     the CPU regardless of the probed device.
//   - `-tags=ORT`: ONNX Runtime session (session_ort.go) with CUDA or CoreML
//     execution providers. Requires libonnxruntime at run time.
//
// A Classifier is safe for concurrent use. Load and Unload are serialized;
// InferTop3 runs concurrently with other inferences and never observes a
// pipeline that is being torn down.
package classifier
