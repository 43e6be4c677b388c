package types

// IntentRequest is the payload accepted by POST /intent.
type IntentRequest struct {
	// Text to classify. At most 60 words and 310 characters.
	// example: what is the arrival time in san francisco for the 755 am flight leaving washington
	Text string `json:"text" example:"what is the arrival time in san francisco for the 755 am flight leaving washington"`
}

// Prediction is a single scored intent label.
type Prediction struct {
	// Candidate label.
	// example: flight time
	Label string `json:"label" example:"flight time"`
	// Score in [0,1].
	// example: 0.61
	Score float64 `json:"score" example:"0.61"`
}

// IntentResponse is returned by POST /intent on success.
type IntentResponse struct {
	// Up to three predictions ordered by descending score.
	Intents []Prediction `json:"intents"`
}

// ErrorResponse is the JSON error payload for every non-2xx JSON response.
type ErrorResponse struct {
	// Machine-readable error label.
	// example: TEXT_MISSING
	Label string `json:"label" example:"TEXT_MISSING"`
	// Human-readable message.
	// example: "text" missing from request body.
	Message string `json:"message" example:"\"text\" missing from request body."`
}

// LoadModelRequest is accepted by PUT /model when admin routes are enabled.
type LoadModelRequest struct {
	// Hugging Face model id to load.
	// example: Xenova/distilbert-base-uncased-mnli
	Model string `json:"model" example:"Xenova/distilbert-base-uncased-mnli"`
}

// ModelsResponse wraps the cached artifacts returned by GET /models.
type ModelsResponse struct {
	// Model artifacts present in the local cache.
	Models []CachedModel `json:"models"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Classifier state: unloaded or loaded.
	// example: loaded
	State string `json:"state" example:"loaded"`
	// Model id of the loaded pipeline.
	// example: Xenova/distilbert-base-uncased-mnli
	ModelID string `json:"model_id,omitempty" example:"Xenova/distilbert-base-uncased-mnli"`
	// Pipeline type of the loaded pipeline.
	// example: zero-shot
	PipelineType string `json:"pipeline_type,omitempty" example:"zero-shot-classification"`
	// Compute device used by the pipeline.
	// example: cpu
	Device string `json:"device,omitempty" example:"cpu"`
	// When the current pipeline was loaded (unix seconds).
	// example: 1700000000
	LoadedAtUnix int64 `json:"loaded_at_unix,omitempty" example:"1700000000"`
	// Last load error observed by the classifier (if any).
	LastError string `json:"last_error,omitempty"`
	// Total number of pipelines built.
	// example: 1
	LoadsTotal uint64 `json:"loads_total" example:"1"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
