package collector

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSourcesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSources(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - name: smol
    url: https://news.smol.ai/rss.xml
  - name: hn
    url: https://hnrss.org/frontpage
`)

	sources, err := LoadSources(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(sources))
	}
	if sources[0].Name != "smol" || sources[0].URL != "https://news.smol.ai/rss.xml" {
		t.Errorf("Unexpected first source: %+v", sources[0])
	}
	if sources[1].URL != "https://hnrss.org/frontpage" {
		t.Errorf("Unexpected second source: %+v", sources[1])
	}
}

func TestLoadSourcesMissingURL(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - name: nameless
`)

	if _, err := LoadSources(path); err == nil {
		t.Error("Expected error for source without url")
	}
}

func TestLoadSourcesEmptyFile(t *testing.T) {
	path := writeSourcesFile(t, "sources: []\n")

	if _, err := LoadSources(path); err == nil {
		t.Error("Expected error for empty sources list")
	}
}

func TestLoadSourcesMissingFile(t *testing.T) {
	if _, err := LoadSources(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadSourcesInvalidYAML(t *testing.T) {
	path := writeSourcesFile(t, "sources: [not: valid: yaml\n")

	if _, err := LoadSources(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
