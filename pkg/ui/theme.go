package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/storefront-labs/storeboard/pkg/model"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals use the
// terminal's own background instead of a down-converted approximation
// that may clash with palettes like Solarized.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor

	// Metric semantics
	Positive lipgloss.AdaptiveColor // revenue up, good ROAS
	Negative lipgloss.AdaptiveColor // revenue down, high cancel rate
	Neutral  lipgloss.AdaptiveColor

	// Channels
	Wolt      lipgloss.AdaptiveColor
	Foodora   lipgloss.AdaptiveColor
	UberEats  lipgloss.AdaptiveColor
	OwnOnline lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Styles, created once at startup instead of per-frame.
	Base          lipgloss.Style
	Selected      lipgloss.Style
	Header        lipgloss.Style
	HeaderSorted  lipgloss.Style
	CompanyRow    lipgloss.Style
	MutedText     lipgloss.Style
	PositiveText  lipgloss.Style
	NegativeText  lipgloss.Style
	GroupActive   lipgloss.Style
	GroupInactive lipgloss.Style
	Footer        lipgloss.Style
	Sparkline     lipgloss.Style
}

// DefaultTheme returns the standard Dracula-inspired theme (adaptive).
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"},

		Positive: lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"},
		Negative: lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},
		Neutral:  lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},

		Wolt:      lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"},
		Foodora:   lipgloss.AdaptiveColor{Light: "#B0005E", Dark: "#FF79C6"},
		UberEats:  lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"},
		OwnOnline: lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#6699FF"},

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F8F8F2"})

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		Bold(true)

	t.Header = r.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	t.HeaderSorted = r.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		Underline(true)

	t.CompanyRow = t.Base.Bold(true)
	t.MutedText = r.NewStyle().Foreground(t.Muted)
	t.PositiveText = r.NewStyle().Foreground(t.Positive)
	t.NegativeText = r.NewStyle().Foreground(t.Negative)

	t.GroupActive = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Padding(0, 1).
		Bold(true)

	t.GroupInactive = r.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	t.Footer = r.NewStyle().Foreground(t.Subtext)
	t.Sparkline = r.NewStyle().Foreground(t.Primary)

	return t
}

// ChannelColor returns the accent color for a delivery channel.
func (t Theme) ChannelColor(ch model.ChannelID) lipgloss.AdaptiveColor {
	switch ch {
	case model.ChannelWolt:
		return t.Wolt
	case model.ChannelFoodora:
		return t.Foodora
	case model.ChannelUberEats:
		return t.UberEats
	case model.ChannelOwnOnline:
		return t.OwnOnline
	default:
		return t.Subtext
	}
}

// ChannelLabel returns the short display label for a channel.
func ChannelLabel(ch model.ChannelID) string {
	switch ch {
	case model.ChannelWolt:
		return "Wolt"
	case model.ChannelFoodora:
		return "Foodora"
	case model.ChannelUberEats:
		return "Uber Eats"
	case model.ChannelOwnOnline:
		return "Online"
	default:
		return string(ch)
	}
}

// TestTheme returns a theme suitable for use in tests (stdout renderer).
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
