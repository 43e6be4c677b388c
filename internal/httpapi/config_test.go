package httpapi

import (
	"testing"
	"time"
)

func TestSetMaxBodyBytes_DefaultWhenNonPositive(t *testing.T) {
	SetMaxBodyBytes(-1)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(1234)
	if maxBodyBytes != 1234 {
		t.Fatalf("expected 1234, got %d", maxBodyBytes)
	}
	SetMaxBodyBytes(0)
	if maxBodyBytes != 1<<20 {
		t.Fatalf("expected default 1MiB on zero, got %d", maxBodyBytes)
	}
}

func TestSetLoadTimeout_NormalizesNegativeToZero(t *testing.T) {
	defer SetLoadTimeout(10 * time.Minute)
	SetLoadTimeout(-time.Second)
	if loadTimeout != 0 {
		t.Fatalf("expected 0, got %v", loadTimeout)
	}
	SetLoadTimeout(3 * time.Second)
	if loadTimeout != 3*time.Second {
		t.Fatalf("expected 3s, got %v", loadTimeout)
	}
}

func TestTextTooLong(t *testing.T) {
	cases := map[string]bool{
		"book a flight":                 false,
		string(make([]byte, 311)):       true,
		"  spaced   out\twords\n here ": false,
	}
	for in, want := range cases {
		if got := textTooLong(in); got != want {
			t.Fatalf("textTooLong(%q)=%v want %v", in, got, want)
		}
	}
}
