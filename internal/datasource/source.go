// Package datasource discovers and reads metrics snapshots for sb. A
// snapshot is the flat row collection produced by the upstream aggregation
// service, delivered either as a JSON export (snapshot.json) or a SQLite
// database (metrics.db). The freshest valid source wins; SQLite is
// preferred on a timestamp tie because it also carries the weekly revenue
// series used for sparklines.
package datasource

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// SourceType identifies the type of data source.
type SourceType string

const (
	// SourceTypeSQLite is a SQLite metrics database (metrics.db)
	SourceTypeSQLite SourceType = "sqlite"
	// SourceTypeJSON is a JSON snapshot export (snapshot.json)
	SourceTypeJSON SourceType = "json"
)

// Priority values for source types (higher = more authoritative).
const (
	PrioritySQLite = 100
	PriorityJSON   = 50
)

// Source represents a discovered metrics snapshot.
type Source struct {
	Type     SourceType `json:"type"`
	Path     string     `json:"path"`
	Priority int        `json:"priority"`
	ModTime  time.Time  `json:"mod_time"`
	Size     int64      `json:"size"`
}

// String returns a human-readable description of the source.
func (s Source) String() string {
	return fmt.Sprintf("%s (%s, priority=%d, mod=%s)",
		s.Path, s.Type, s.Priority, s.ModTime.Format(time.RFC3339))
}

// Discover finds metrics sources at path. A file path yields exactly that
// source; a directory is scanned for metrics.db and *.json snapshots.
// Results are sorted freshest first, priority breaking ties.
func Discover(path string) ([]Source, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var sources []Source
	if !info.IsDir() {
		src, err := classify(path, info)
		if err != nil {
			return nil, err
		}
		return []Source{src}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name != "metrics.db" && !strings.HasSuffix(name, ".json") {
			continue
		}
		// Skip editor backups and partial downloads.
		if strings.Contains(name, ".backup") || strings.HasSuffix(name, ".part") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		src, err := classify(filepath.Join(path, name), fi)
		if err != nil {
			continue
		}
		sources = append(sources, src)
	}

	sort.Slice(sources, func(i, j int) bool {
		if sources[i].ModTime.Equal(sources[j].ModTime) {
			return sources[i].Priority > sources[j].Priority
		}
		return sources[i].ModTime.After(sources[j].ModTime)
	})

	return sources, nil
}

// classify builds a Source for a concrete file.
func classify(path string, info os.FileInfo) (Source, error) {
	src := Source{
		Path:    path,
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}
	switch {
	case strings.HasSuffix(path, ".db"):
		src.Type = SourceTypeSQLite
		src.Priority = PrioritySQLite
	case strings.HasSuffix(path, ".json"):
		src.Type = SourceTypeJSON
		src.Priority = PriorityJSON
	default:
		return Source{}, fmt.Errorf("unrecognized snapshot format: %s", path)
	}
	return src, nil
}
