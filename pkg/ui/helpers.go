package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// FormatMoney renders a monetary value with thousands separators and the
// configured currency symbol, e.g. "€12 345".
func FormatMoney(v float64, currency string) string {
	return currency + groupThousands(fmt.Sprintf("%.0f", v))
}

// FormatPercent renders a percentage with one decimal and an explicit sign
// for deltas, e.g. "+2.5%" / "-1.0%".
func FormatPercent(v float64, signed bool) string {
	if signed {
		return fmt.Sprintf("%+.1f%%", v)
	}
	return fmt.Sprintf("%.1f%%", v)
}

// FormatCount renders an integer metric with thousands separators.
func FormatCount(v float64) string {
	return groupThousands(fmt.Sprintf("%.0f", v))
}

// FormatDecimal renders a ratio metric like ROAS or rating.
func FormatDecimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// groupThousands inserts thin spaces into an integer string: 1234567 →
// "1 234 567". The sign is left alone.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatTimeRel returns a relative time string (e.g., "2h ago", "3d ago").
func FormatTimeRel(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	d := time.Since(t)
	if d < 0 {
		return "now"
	}
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	default:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	}
}

// truncateRunesHelper truncates a string to max visual width (cells),
// adding suffix if needed. Uses go-runewidth to handle wide characters
// correctly.
func truncateRunesHelper(s string, maxWidth int, suffix string) string {
	if maxWidth <= 0 {
		return ""
	}

	width := runewidth.StringWidth(s)
	if width <= maxWidth {
		return s
	}

	suffixWidth := runewidth.StringWidth(suffix)
	if suffixWidth > maxWidth {
		return runewidth.Truncate(suffix, maxWidth, "")
	}

	return runewidth.Truncate(s, maxWidth-suffixWidth, "") + suffix
}

// truncate truncates string s to maxWidth cells with an ellipsis.
func truncate(s string, maxWidth int) string {
	return truncateRunesHelper(s, maxWidth, "…")
}

// padRight pads string s with spaces on the right to length width.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// padLeft pads string s with spaces on the left to length width, the
// alignment used for numeric cells.
func padLeft(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// visibleWidth returns the cell width of s ignoring trailing whitespace
// rune count mishaps; helper for layout math on plain strings.
func visibleWidth(s string) int {
	if utf8.ValidString(s) {
		return runewidth.StringWidth(s)
	}
	return len(s)
}
