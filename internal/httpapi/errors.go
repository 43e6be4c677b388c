package httpapi

import (
	"encoding/json"
	"net/http"

	"intentd/pkg/types"
)

// Error labels returned in ErrorResponse payloads.
const (
	LabelBodyMissing          = "BODY_MISSING"
	LabelBodyInvalid          = "BODY_INVALID"
	LabelBodyTooLarge         = "BODY_TOO_LARGE"
	LabelUnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"
	LabelTextMissing          = "TEXT_MISSING"
	LabelTextTooLong          = "TEXT_TOO_LONG"
	LabelModelMissing         = "MODEL_MISSING"
	LabelLoadFailed           = "LOAD_FAILED"
	LabelInternalError        = "INTERNAL_ERROR"
)

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, label, msg string) {
	writeJSON(w, status, types.ErrorResponse{Label: label, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestError is a client input error detected before the service is called.
type requestError struct {
	status  int
	label   string
	message string
}

func (e *requestError) Error() string { return e.label + ": " + e.message }

func (e *requestError) write(w http.ResponseWriter) {
	rejectionsTotal.WithLabelValues(e.label).Inc()
	writeJSONError(w, e.status, e.label, e.message)
}
