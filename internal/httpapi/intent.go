package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"intentd/pkg/types"
)

var (
	errBodyMissing  = &requestError{http.StatusBadRequest, LabelBodyMissing, "Request doesn't have a body."}
	errBodyInvalid  = &requestError{http.StatusBadRequest, LabelBodyInvalid, "Request body is not valid JSON."}
	errBodyTooLarge = &requestError{http.StatusRequestEntityTooLarge, LabelBodyTooLarge, "Request body is too large."}
	errMediaType    = &requestError{http.StatusUnsupportedMediaType, LabelUnsupportedMediaType, "Content-Type must be application/json."}
	errTextMissing  = &requestError{http.StatusBadRequest, LabelTextMissing, `"text" missing from request body.`}
	errTextTooLong  = &requestError{http.StatusBadRequest, LabelTextTooLong, `"text" is too long.`}
	errModelMissing = &requestError{http.StatusBadRequest, LabelModelMissing, `"model" missing from request body.`}
)

// readJSONObject reads a size-limited JSON body. Empty bodies and empty
// values (null, {}, [], "", false, 0) are reported as a missing body.
func readJSONObject(w http.ResponseWriter, r *http.Request) (map[string]any, *requestError) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, errBodyTooLarge
		}
		return nil, errBodyInvalid
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errBodyMissing
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		return nil, errMediaType
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errBodyInvalid
	}
	switch t := v.(type) {
	case nil:
		return nil, errBodyMissing
	case map[string]any:
		if len(t) == 0 {
			return nil, errBodyMissing
		}
		return t, nil
	case []any:
		if len(t) == 0 {
			return nil, errBodyMissing
		}
	case string:
		if t == "" {
			return nil, errBodyMissing
		}
	case bool:
		if !t {
			return nil, errBodyMissing
		}
	case float64:
		if t == 0 {
			return nil, errBodyMissing
		}
	}
	// Any other non-object body has no fields.
	return map[string]any{}, nil
}

// decodeIntentRequest validates an /intent body.
func decodeIntentRequest(w http.ResponseWriter, r *http.Request) (types.IntentRequest, *requestError) {
	obj, rerr := readJSONObject(w, r)
	if rerr != nil {
		return types.IntentRequest{}, rerr
	}
	text, ok := obj["text"].(string)
	if !ok || text == "" {
		return types.IntentRequest{}, errTextMissing
	}
	if textTooLong(text) {
		return types.IntentRequest{}, errTextTooLong
	}
	return types.IntentRequest{Text: text}, nil
}

// textTooLong counts whitespace-separated words and code points.
func textTooLong(text string) bool {
	return len(strings.Fields(text)) > maxTextWords || utf8.RuneCountInString(text) > maxTextRunes
}

func decodeLoadModelRequest(w http.ResponseWriter, r *http.Request) (types.LoadModelRequest, *requestError) {
	obj, rerr := readJSONObject(w, r)
	if rerr != nil {
		return types.LoadModelRequest{}, rerr
	}
	model, ok := obj["model"].(string)
	if !ok || strings.TrimSpace(model) == "" {
		return types.LoadModelRequest{}, errModelMissing
	}
	return types.LoadModelRequest{Model: strings.TrimSpace(model)}, nil
}
