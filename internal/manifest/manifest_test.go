package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	m, err := Parse([]byte(`module: app
bindings:
  - key: Config
  - key: Database
    kind: provision
    dependencies:
      - key: Config
        request: instance
components:
  - name: AppComponent
    entry_points:
      - key: Database
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Module != "app" {
		t.Fatalf("expected module app, got %q", m.Module)
	}
	if len(m.Bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(m.Bindings))
	}
	if len(m.Components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(m.Components))
	}
	if m.Bindings[1].Dependencies[0].Request != "instance" {
		t.Fatalf("expected instance request, got %q", m.Bindings[1].Dependencies[0].Request)
	}
}

func TestParseMissingModule(t *testing.T) {
	_, err := Parse([]byte("bindings:\n  - key: Config\n"))
	if !errors.Is(err, ErrMissingModule) {
		t.Fatalf("expected ErrMissingModule, got %v", err)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("module: [\n"))
	if !errors.Is(err, ErrInvalidYAML) {
		t.Fatalf("expected ErrInvalidYAML, got %v", err)
	}
}

func TestParseBindingMissingKey(t *testing.T) {
	_, err := Parse([]byte("module: app\nbindings:\n  - kind: provision\n"))
	if !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestParseDependencyMissingKey(t *testing.T) {
	_, err := Parse([]byte("module: app\nbindings:\n  - key: Database\n    dependencies:\n      - request: instance\n"))
	if !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestParseComponentMissingName(t *testing.T) {
	_, err := Parse([]byte("module: app\ncomponents:\n  - entry_points:\n      - key: Database\n"))
	if !errors.Is(err, ErrMissingComponent) {
		t.Fatalf("expected ErrMissingComponent, got %v", err)
	}
}

func TestParseFileSetsSourceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	if err := os.WriteFile(path, []byte("module: app\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := ParseFile(path)
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if m.SourceFile != path {
		t.Fatalf("expected source file %q, got %q", path, m.SourceFile)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, filepath.Join(dir, "app.yaml"), "module: app\n")
	writeManifest(t, filepath.Join(dir, "billing.yml"), "module: billing\n")
	writeManifest(t, filepath.Join(dir, "notes.txt"), "not a manifest")

	skipDir := filepath.Join(dir, "vendor")
	if err := os.MkdirAll(skipDir, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeManifest(t, filepath.Join(skipDir, "ignored.yaml"), "module: ignored\n")

	manifests, err := LoadAll([]string{dir}, []string{skipDir})
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(manifests) != 2 {
		t.Fatalf("expected 2 manifests, got %d", len(manifests))
	}
	for _, m := range manifests {
		if m.Module == "ignored" {
			t.Fatalf("excluded manifest was loaded")
		}
	}
}

func TestLoadAllEmpty(t *testing.T) {
	if _, err := LoadAll([]string{t.TempDir()}, nil); err == nil {
		t.Fatalf("expected error when no manifests found")
	}
}

func writeManifest(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
