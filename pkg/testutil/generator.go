// Package testutil provides test fixture generators for merchant hierarchy
// topologies. All generators produce deterministic output for reproducible
// tests.
package testutil

import (
	"fmt"
	"math/rand"

	"github.com/storefront-labs/storeboard/pkg/model"
)

// GeneratorConfig controls row generation.
type GeneratorConfig struct {
	Seed     int64  // Random seed for determinism (0 = 42)
	IDPrefix string // Prefix for row IDs (default: "row")
}

// DefaultConfig returns a config suitable for most tests.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:     42,
		IDPrefix: "row",
	}
}

// Generator creates row fixtures with various hierarchy shapes.
type Generator struct {
	cfg     GeneratorConfig
	rng     *rand.Rand
	counter int
}

// New creates a Generator with the given config.
func New(cfg GeneratorConfig) *Generator {
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.IDPrefix == "" {
		cfg.IDPrefix = "row"
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// NewDefault creates a Generator with default config.
func NewDefault() *Generator {
	return New(DefaultConfig())
}

// levelByDepth maps tree depth to the canonical hierarchy level.
var levelByDepth = []model.Level{
	model.LevelCompany,
	model.LevelBrand,
	model.LevelAddress,
	model.LevelChannel,
}

// Forest generates a full 4-level hierarchy: companies, each with
// brandsPer brands, each with addressesPer addresses, each with
// channelsPer channels. Metrics are random but deterministic for a seed.
// Rows come out in pre-order, matching how the aggregation service
// exports snapshots.
func (g *Generator) Forest(companies, brandsPer, addressesPer, channelsPer int) []model.Row {
	var rows []model.Row
	fanout := []int{companies, brandsPer, addressesPer, channelsPer}

	var build func(parentID string, depth int)
	build = func(parentID string, depth int) {
		if depth >= len(fanout) {
			return
		}
		for i := 0; i < fanout[depth]; i++ {
			row := g.Row(parentID, depth)
			rows = append(rows, row)
			build(row.ID, depth+1)
		}
	}
	build("", 0)
	return rows
}

// Row generates a single row at the given depth under parentID.
func (g *Generator) Row(parentID string, depth int) model.Row {
	level := levelByDepth[depth%len(levelByDepth)]
	g.counter++
	// IDs come from a counter so they never collide; only names and
	// metrics are randomized.
	id := fmt.Sprintf("%s-%s-%04d", g.cfg.IDPrefix, level, g.counter)

	row := model.Row{
		ID:       id,
		ParentID: parentID,
		Level:    level,
		Name:     fmt.Sprintf("%s %04d", nameStem(level), g.rng.Intn(10000)),

		Revenue:       float64(g.rng.Intn(500000)) / 100,
		RevenueChange: float64(g.rng.Intn(8000)-4000) / 100,
		Orders:        g.rng.Intn(2000),
	}
	if level == model.LevelChannel {
		channels := []model.ChannelID{
			model.ChannelWolt, model.ChannelFoodora,
			model.ChannelUberEats, model.ChannelOwnOnline,
		}
		row.ChannelID = channels[g.rng.Intn(len(channels))]
	}

	// Optional metrics are present roughly two thirds of the time, so
	// fixtures exercise the missing-metric-reads-as-zero path.
	if g.rng.Intn(3) > 0 {
		row.NewCustomers = model.IntPtr(g.rng.Intn(300))
		row.ReturningCustomers = model.IntPtr(g.rng.Intn(700))
		row.ReturnRate = model.FloatPtr(float64(g.rng.Intn(100)))
	}
	if g.rng.Intn(3) > 0 {
		row.AdSpend = model.FloatPtr(float64(g.rng.Intn(100000)) / 100)
		row.AdRevenue = model.FloatPtr(float64(g.rng.Intn(400000)) / 100)
		row.ROAS = model.FloatPtr(float64(g.rng.Intn(80)) / 10)
	}
	if g.rng.Intn(3) > 0 {
		row.Rating = model.FloatPtr(3 + float64(g.rng.Intn(20))/10)
		row.CancelRate = model.FloatPtr(float64(g.rng.Intn(150)) / 10)
	}

	return row
}

func nameStem(level model.Level) string {
	switch level {
	case model.LevelCompany:
		return "Company"
	case model.LevelBrand:
		return "Brand"
	case model.LevelAddress:
		return "Store"
	case model.LevelChannel:
		return "Channel"
	default:
		return "Row"
	}
}

// Chain generates a single company→brand→address→channel chain, useful
// for cascade tests.
func (g *Generator) Chain() []model.Row {
	rows := make([]model.Row, 0, 4)
	parent := ""
	for depth := 0; depth < 4; depth++ {
		row := g.Row(parent, depth)
		rows = append(rows, row)
		parent = row.ID
	}
	return rows
}
