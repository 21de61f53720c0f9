package datasource

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/storefront-labs/storeboard/pkg/debug"
	"github.com/storefront-labs/storeboard/pkg/model"
)

// Snapshot is one fully-loaded metrics snapshot: the flat row collection
// plus the optional per-row weekly revenue series. Rows are the engine's
// input; Series only feeds the sparkline column.
type Snapshot struct {
	Rows     []model.Row
	Series   map[string][]float64
	Source   Source
	LoadedAt time.Time
}

// SeriesFor returns the weekly revenue series for a row id, or nil.
// Implements ui.SeriesProvider.
func (s *Snapshot) SeriesFor(id string) []float64 {
	return s.Series[id]
}

// Load discovers the freshest source at path and loads it. JSON rows and
// SQLite rows/series load through the same Snapshot shape, so callers
// never branch on source type.
func Load(path string) (*Snapshot, error) {
	defer debug.LogEnterExit("datasource.Load")()

	sources, err := Discover(path)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no metrics snapshot found at %s", path)
	}
	return LoadSource(sources[0])
}

// LoadSource loads a specific discovered source.
func LoadSource(source Source) (*Snapshot, error) {
	snap := &Snapshot{Source: source, LoadedAt: time.Now()}

	switch source.Type {
	case SourceTypeSQLite:
		reader, err := NewSQLiteReader(source)
		if err != nil {
			return nil, err
		}
		defer reader.Close()

		// Rows and the sparkline series are independent queries; load
		// them concurrently.
		var g errgroup.Group
		g.Go(func() error {
			rows, err := reader.LoadRows()
			if err != nil {
				return err
			}
			snap.Rows = rows
			return nil
		})
		g.Go(func() error {
			series, err := reader.LoadSeries()
			if err != nil {
				return err
			}
			snap.Series = series
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

	case SourceTypeJSON:
		reader, err := NewJSONReader(source)
		if err != nil {
			return nil, err
		}
		rows, err := reader.LoadRows()
		if err != nil {
			return nil, err
		}
		snap.Rows = rows
		snap.Series = reader.snapshot.Series

	default:
		return nil, fmt.Errorf("unsupported source type: %s", source.Type)
	}

	debug.Log("loaded %d rows from %s", len(snap.Rows), source.Path)
	return snap, nil
}
