package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// helpMarkdown is the help overlay content. Rendered through glamour so
// it picks up the terminal's light/dark style automatically.
const helpMarkdown = `# storeboard

Hierarchical rollup of your delivery metrics: companies, brands,
addresses and channels, one tree.

## Navigation

| Key | Action |
|-----|--------|
| ↑/k, ↓/j | move cursor |
| pgup, pgdn | page |
| g / G | top / bottom |
| enter, space | expand / collapse row |
| E / C | expand all / collapse all |

## Columns

| Key | Action |
|-----|--------|
| [ / ] | focus previous / next column |
| s | sort focused column (cycles: desc, asc, off) |
| ←/h, →/l | scroll metric columns |
| 1-5 | toggle column group |

## Data

| Key | Action |
|-----|--------|
| r | reload snapshot |
| y | copy row id |
| x | export visible view as CSV |
| ? | toggle this help |
| q | quit |

Sorting reorders rows within their siblings only; children always stay
under their parent. The name column sorts alphabetically, every metric
column numerically with missing values counted as zero.
`

// RenderHelp renders the help overlay at the given width. Falls back to
// the raw markdown when the renderer cannot be constructed (e.g. a dumb
// terminal).
func RenderHelp(width int) string {
	wrap := width - 4
	if wrap < 40 {
		wrap = 40
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return compressBlankLines(out)
}

// compressBlankLines collapses runs of more than two blank lines, which
// glamour sometimes emits around tables.
func compressBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 2 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// VersionLine formats the footer version segment.
func VersionLine(version string) string {
	return fmt.Sprintf("sb %s", version)
}
