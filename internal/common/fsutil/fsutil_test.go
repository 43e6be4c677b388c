package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	cases := []struct{ in, want string }{
		{"", ""},
		{"/srv/models", "/srv/models"},
		{"~", home},
		{"~/models", filepath.Join(home, "models")},
	}
	for _, c := range cases {
		got, err := ExpandHome(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q -> %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEnsureDir_CreatesAndIsIdempotent(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b")
	got, err := EnsureDir(target)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got != target {
		t.Fatalf("expected %q, got %q", target, got)
	}
	if fi, err := os.Stat(target); err != nil || !fi.IsDir() {
		t.Fatalf("dir not created: %v", err)
	}
	// second call on an existing dir is fine
	if _, err := EnsureDir(target); err != nil {
		t.Fatalf("ensure existing: %v", err)
	}
}

func TestEnsureDir_EmptyPath(t *testing.T) {
	if _, err := EnsureDir("  "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "file")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := EnsureDir(p); err == nil {
		t.Fatalf("expected error when a file occupies the path")
	}
}

func TestIsFileAndPathExists(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "f.txt")
	if IsFile(p) || PathExists(p) {
		t.Fatalf("file should not exist yet")
	}
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !IsFile(p) || !PathExists(p) {
		t.Fatalf("expected file to exist")
	}
	if IsFile(d) {
		t.Fatalf("directory reported as file")
	}
}

func TestDirSizeMB(t *testing.T) {
	d := t.TempDir()
	if got := DirSizeMB(d); got != 0 {
		t.Fatalf("empty dir size=%d", got)
	}
	if err := os.WriteFile(filepath.Join(d, "blob"), make([]byte, 1024*1024+1), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := DirSizeMB(d); got != 2 {
		t.Fatalf("expected 2MB rounded up, got %d", got)
	}
}
