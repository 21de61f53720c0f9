//go:build ignore

// generate_testdata.go creates demo metrics snapshots for manual testing
// and benchmarking.
// Usage: go run scripts/generate_testdata.go
//
// Creates:
//
//	tests/testdata/small.json   (1 company, shallow)
//	tests/testdata/medium.json  (5 companies, full depth)
//	tests/testdata/large.json   (20 companies, full depth)
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"github.com/storefront-labs/storeboard/pkg/model"
	"github.com/storefront-labs/storeboard/pkg/testutil"
)

type datasetSpec struct {
	name      string
	companies int
	brands    int
	addresses int
	channels  int
}

var datasets = []datasetSpec{
	{"small", 1, 3, 2, 2},
	{"medium", 5, 4, 3, 4},
	{"large", 20, 5, 4, 4},
}

// snapshot matches the JSON wire format internal/datasource reads.
type snapshot struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Rows        []model.Row          `json:"rows"`
	Series      map[string][]float64 `json:"series,omitempty"`
}

func main() {
	outputDir := "tests/testdata"
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	for _, ds := range datasets {
		gen := testutil.New(testutil.GeneratorConfig{
			Seed:     int64(ds.companies), // reproducible per size
			IDPrefix: ds.name,
		})
		rows := gen.Forest(ds.companies, ds.brands, ds.addresses, ds.channels)

		snap := snapshot{
			GeneratedAt: time.Now().UTC(),
			Rows:        rows,
			Series:      weeklySeries(rows, int64(ds.companies)),
		}

		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal %s: %v\n", ds.name, err)
			os.Exit(1)
		}

		outputPath := filepath.Join(outputDir, ds.name+".json")
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", outputPath, err)
			os.Exit(1)
		}

		fmt.Printf("Written %s (%d rows)\n", outputPath, len(rows))
	}

	fmt.Println("\nDone! Demo snapshots created in", outputDir)
}

// weeklySeries fabricates 12 weeks of revenue per row, anchored to the
// row's current revenue so sparklines look plausible.
func weeklySeries(rows []model.Row, seed int64) map[string][]float64 {
	rng := rand.New(rand.NewSource(seed))
	series := make(map[string][]float64, len(rows))
	for _, row := range rows {
		weeks := make([]float64, 12)
		v := row.Revenue * (0.7 + rng.Float64()*0.3)
		for i := range weeks {
			v *= 0.9 + rng.Float64()*0.2
			weeks[i] = float64(int(v*100)) / 100
		}
		series[row.ID] = weeks
	}
	return series
}
