package httpapi

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"DEBUG": LevelDebug,
		"weird": LevelInfo, // default
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	// query param ?log=debug
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	// short query param ?log=1
	r = httptest.NewRequest("GET", "/x?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("short query override failed: %v", got)
	}
	// header X-Log-Level
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
}

func TestIntent_DebugLogsText(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	r := NewMux(&mockService{}, testLabels)
	postJSON(r, "/intent?log=debug", `{"text":"cheapest fare to boston"}`)
	if !strings.Contains(buf.String(), "cheapest fare to boston") {
		t.Fatalf("expected request text in debug log: %q", buf.String())
	}

	buf.Reset()
	postJSON(r, "/intent?log=off", `{"text":"cheapest fare to boston"}`)
	if buf.Len() != 0 {
		t.Fatalf("expected no logs at off: %q", buf.String())
	}
}
