package types

// CachedModel describes a model artifact present in the local cache directory.
type CachedModel struct {
	// Model id the artifact was fetched for, reconstructed from the cache key.
	// example: Xenova/distilbert-base-uncased-mnli
	ID string `json:"id" example:"Xenova/distilbert-base-uncased-mnli"`
	// Absolute path to the artifact directory.
	// example: /srv/intentd/models/Xenova_distilbert-base-uncased-mnli
	Path string `json:"path" example:"/srv/intentd/models/Xenova_distilbert-base-uncased-mnli"`
	// ONNX model file relative to Path.
	// example: onnx/model.onnx
	ModelFile string `json:"model_file" example:"onnx/model.onnx"`
	// Total size of the artifact on disk in MB.
	// example: 256
	SizeMB int `json:"size_mb" example:"256"`
}
