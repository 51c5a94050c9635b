package glider

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.toml")
	writeFile(t, path, `
type = "loop"
per_page = 2
gap = 12.5
rewind = true
`)
	o, err := LoadOptionsFile(path)
	if err != nil {
		t.Fatalf("LoadOptionsFile: %v", err)
	}
	if o.Type != TypeLoop || o.PerPage != 2 || o.Gap != 12.5 || !o.Rewind {
		t.Errorf("loaded = %+v", o)
	}
	if o.Speed != 0.4 {
		t.Errorf("absent key clobbered default: Speed = %v", o.Speed)
	}
}

func TestLoadOptionsFileMissing(t *testing.T) {
	o, err := LoadOptionsFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should yield defaults, got %v", err)
	}
	assertOptionsEqual(t, "loaded", o, DefaultOptions())
}

func TestLoadOptionsFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.toml")
	writeFile(t, path, `per_page = `)
	if _, err := LoadOptionsFile(path); err == nil {
		t.Error("malformed file accepted")
	}
}

func TestLoadOptionsFileBadEnum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.toml")
	writeFile(t, path, `type = "spiral"`)
	if _, err := LoadOptionsFile(path); err == nil {
		t.Error("unknown type value accepted")
	}
}

func TestLoadOptionsFileExplicitZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.toml")
	writeFile(t, path, `speed = 0.0`)
	o, err := LoadOptionsFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if o.Speed != 0 {
		t.Errorf("Speed = %v, want explicit 0", o.Speed)
	}
}
