package ui

import (
	"testing"
	"unicode/utf8"
)

// TestSparklineBasic verifies one rune per point and min/max mapping.
func TestSparklineBasic(t *testing.T) {
	s := Sparkline([]float64{0, 50, 100}, 10)
	if utf8.RuneCountInString(s) != 3 {
		t.Fatalf("expected 3 runes, got %q", s)
	}
	runes := []rune(s)
	if runes[0] != '▁' {
		t.Errorf("minimum should render lowest block, got %c", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("maximum should render highest block, got %c", runes[2])
	}
}

// TestSparklineFlatSeries verifies a constant series renders mid-height
// bars without dividing by zero.
func TestSparklineFlatSeries(t *testing.T) {
	s := Sparkline([]float64{5, 5, 5, 5}, 10)
	if utf8.RuneCountInString(s) != 4 {
		t.Fatalf("expected 4 runes, got %q", s)
	}
	for _, r := range s {
		if r != '▄' {
			t.Errorf("flat series should render uniform bars, got %c", r)
		}
	}
}

// TestSparklineWidthCap verifies long series keep only the tail.
func TestSparklineWidthCap(t *testing.T) {
	series := make([]float64, 30)
	for i := range series {
		series[i] = float64(i)
	}
	s := Sparkline(series, 8)
	if utf8.RuneCountInString(s) != 8 {
		t.Errorf("expected 8 runes, got %d (%q)", utf8.RuneCountInString(s), s)
	}
	// The tail is strictly increasing, so the last rune must be maximal.
	runes := []rune(s)
	if runes[len(runes)-1] != '█' {
		t.Errorf("newest point of rising series should be highest block")
	}
}

// TestSparklineEmpty verifies degenerate inputs.
func TestSparklineEmpty(t *testing.T) {
	if Sparkline(nil, 10) != "" {
		t.Error("nil series should render empty")
	}
	if Sparkline([]float64{1, 2}, 0) != "" {
		t.Error("zero width should render empty")
	}
}

// TestTrend verifies slope classification.
func TestTrend(t *testing.T) {
	if got := Trend([]float64{100, 200, 300, 400}); got != 1 {
		t.Errorf("rising trend = %d, want 1", got)
	}
	if got := Trend([]float64{400, 300, 200, 100}); got != -1 {
		t.Errorf("falling trend = %d, want -1", got)
	}
	if got := Trend([]float64{100, 100, 100, 100}); got != 0 {
		t.Errorf("flat trend = %d, want 0", got)
	}
	if got := Trend([]float64{5}); got != 0 {
		t.Errorf("single point trend = %d, want 0", got)
	}
	// Tiny wiggle relative to magnitude stays flat.
	if got := Trend([]float64{10000, 10001, 10000, 10001}); got != 0 {
		t.Errorf("noise trend = %d, want 0", got)
	}
}

// TestTrendArrow verifies the arrow mapping.
func TestTrendArrow(t *testing.T) {
	if TrendArrow(1) != "↗" || TrendArrow(-1) != "↘" || TrendArrow(0) != "→" {
		t.Error("unexpected arrow mapping")
	}
}
