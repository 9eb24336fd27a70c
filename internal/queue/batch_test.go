package queue

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBatch(t *testing.T) {
	path := writeBatchFile(t, `
items:
  - url: https://youtu.be/a
    quality: 720p
    container: mkv
  - url: https://youtu.be/b
    audio_only: true
  - https://youtu.be/c
`)

	q := New()
	added, err := q.LoadBatch(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 3 {
		t.Fatalf("added = %d, expected 3", added)
	}

	items := q.Items()
	if items[0].Options.Quality != "720p" || items[0].Options.Container != "mkv" {
		t.Errorf("item 0 options = %+v", items[0].Options)
	}
	if !items[1].Options.AudioOnly {
		t.Error("item 1 audio_only override lost")
	}
	if items[2].URL != "https://youtu.be/c" {
		t.Errorf("bare scalar entry url = %q", items[2].URL)
	}
}

func TestLoadBatch_SkipsEmptyURLs(t *testing.T) {
	path := writeBatchFile(t, `
items:
  - url: ""
    quality: 720p
  - url: https://youtu.be/a
`)

	q := New()
	added, err := q.LoadBatch(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 1 || q.Len() != 1 {
		t.Errorf("added = %d, len = %d, expected 1 each", added, q.Len())
	}
}

func TestLoadBatch_MissingFile(t *testing.T) {
	q := New()
	if _, err := q.LoadBatch(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadBatch_MalformedYAML(t *testing.T) {
	path := writeBatchFile(t, "items: [url: {")
	q := New()
	if _, err := q.LoadBatch(path); err == nil {
		t.Error("expected a parse error")
	}
}
