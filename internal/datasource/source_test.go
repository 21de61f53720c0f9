package datasource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

// TestDiscoverSingleFile verifies a direct file path yields exactly that
// source.
func TestDiscoverSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	touch(t, path, time.Now())

	sources, err := Discover(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(sources))
	}
	if sources[0].Type != SourceTypeJSON || sources[0].Path != path {
		t.Errorf("unexpected source: %+v", sources[0])
	}
}

// TestDiscoverDirectoryFreshestFirst verifies directory scan order: newer
// files first, SQLite beating JSON on a timestamp tie.
func TestDiscoverDirectoryFreshestFirst(t *testing.T) {
	dir := t.TempDir()
	now := time.Now().Truncate(time.Second)

	touch(t, filepath.Join(dir, "old.json"), now.Add(-time.Hour))
	touch(t, filepath.Join(dir, "metrics.db"), now)
	touch(t, filepath.Join(dir, "snapshot.json"), now)

	sources, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(sources))
	}
	if sources[0].Type != SourceTypeSQLite {
		t.Errorf("tie should prefer sqlite, got %s", sources[0].Type)
	}
	if sources[1].Type != SourceTypeJSON {
		t.Errorf("expected json second, got %s", sources[1].Type)
	}
	if filepath.Base(sources[2].Path) != "old.json" {
		t.Errorf("oldest file should sort last, got %s", sources[2].Path)
	}
}

// TestDiscoverSkipsBackupsAndPartials verifies editor backups and partial
// downloads are ignored.
func TestDiscoverSkipsBackupsAndPartials(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	touch(t, filepath.Join(dir, "snapshot.json"), now)
	touch(t, filepath.Join(dir, "snapshot.json.backup"), now)
	touch(t, filepath.Join(dir, "snapshot.json.part"), now)
	touch(t, filepath.Join(dir, "notes.txt"), now)

	sources, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 1 || filepath.Base(sources[0].Path) != "snapshot.json" {
		t.Errorf("expected only snapshot.json, got %+v", sources)
	}
}

// TestDiscoverMissingPath verifies a nonexistent path errors.
func TestDiscoverMissingPath(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing path")
	}
}

// TestDiscoverUnrecognizedFile verifies pointing straight at an unknown
// format errors instead of guessing.
func TestDiscoverUnrecognizedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metrics.csv")
	touch(t, path, time.Now())

	if _, err := Discover(path); err == nil {
		t.Error("expected error for unrecognized format")
	}
}
