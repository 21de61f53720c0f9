package datasource

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/storefront-labs/storeboard/pkg/model"
)

// jsonSnapshot is the wire format of a JSON snapshot export. The upstream
// aggregation service writes the rows in hierarchy-friendly order, but
// nothing here depends on that: order is preserved, not interpreted.
type jsonSnapshot struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Rows        []model.Row          `json:"rows"`
	Series      map[string][]float64 `json:"series,omitempty"` // row id -> weekly revenue
}

// JSONReader reads rows and sparkline series from a JSON snapshot file.
type JSONReader struct {
	path     string
	snapshot jsonSnapshot
}

// NewJSONReader parses the snapshot at source.Path.
func NewJSONReader(source Source) (*JSONReader, error) {
	if source.Type != SourceTypeJSON {
		return nil, fmt.Errorf("source is not JSON: %s", source.Type)
	}
	data, err := os.ReadFile(source.Path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	r := &JSONReader{path: source.Path}
	if err := json.Unmarshal(data, &r.snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", source.Path, err)
	}
	return r, nil
}

// LoadRows returns the snapshot's row collection in file order.
func (r *JSONReader) LoadRows() ([]model.Row, error) {
	rows := r.snapshot.Rows
	for i := range rows {
		if err := rows[i].Validate(); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", r.path, err)
		}
	}
	return rows, nil
}

// Series returns the weekly revenue series for a row id, or nil when the
// snapshot has none. Implements ui.SeriesProvider.
func (r *JSONReader) Series(id string) []float64 {
	return r.snapshot.Series[id]
}

// GeneratedAt returns the snapshot's generation timestamp.
func (r *JSONReader) GeneratedAt() time.Time {
	return r.snapshot.GeneratedAt
}

// Close is a no-op; the file is fully read at open time.
func (r *JSONReader) Close() error { return nil }
