package ui

import (
	"strings"

	"gonum.org/v1/gonum/stat"
)

// SeriesProvider supplies the weekly revenue series for a row id. The
// datasource snapshot implements it; rows without a series render blank.
type SeriesProvider interface {
	SeriesFor(id string) []float64
}

// sparkRunes are the eight block elements used for sparkline buckets.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a numeric series as block characters, newest value
// last. Width caps the number of points; the series tail wins when it is
// longer.
func Sparkline(series []float64, width int) string {
	if len(series) == 0 || width <= 0 {
		return ""
	}
	if len(series) > width {
		series = series[len(series)-width:]
	}

	min, max := series[0], series[0]
	for _, v := range series[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	if max == min {
		// Flat series: render mid-height bars rather than dividing by zero.
		for range series {
			b.WriteRune(sparkRunes[3])
		}
		return b.String()
	}

	scale := float64(len(sparkRunes)-1) / (max - min)
	for _, v := range series {
		b.WriteRune(sparkRunes[int((v-min)*scale+0.5)])
	}
	return b.String()
}

// Trend classifies the direction of a series by the slope of a linear fit
// over its points: +1 rising, -1 falling, 0 flat or too short.
func Trend(series []float64) int {
	if len(series) < 2 {
		return 0
	}

	xs := make([]float64, len(series))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, series, nil, false)

	// Slope threshold relative to the series mean keeps noise out of the
	// arrow for large revenue magnitudes.
	mean := stat.Mean(series, nil)
	threshold := 0.01 * mean
	if threshold < 0 {
		threshold = -threshold
	}
	switch {
	case slope > threshold:
		return 1
	case slope < -threshold:
		return -1
	default:
		return 0
	}
}

// TrendArrow maps a Trend classification to its display arrow.
func TrendArrow(trend int) string {
	switch {
	case trend > 0:
		return "↗"
	case trend < 0:
		return "↘"
	default:
		return "→"
	}
}
