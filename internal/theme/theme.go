package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string

	// Core colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Text colors
	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	// UI element colors
	Background  lipgloss.Color
	Surface     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Money
	Credit lipgloss.Color
	Debit  lipgloss.Color

	// Semantic colors
	Heading lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color

	// Tab bar
	TabActive   lipgloss.Color
	TabInactive lipgloss.Color
}

var themes = map[string]Theme{
	"default":  Default,
	"midnight": Midnight,
	"nord":     Nord,
}

// Default is the black and white XBank palette.
var Default = Theme{
	Name:        "default",
	Primary:     lipgloss.Color("#FFFFFF"),
	Secondary:   lipgloss.Color("#A3A3A3"),
	Accent:      lipgloss.Color("#F59E0B"),
	Text:        lipgloss.Color("#E5E5E5"),
	TextDim:     lipgloss.Color("#666666"),
	TextBright:  lipgloss.Color("#FFFFFF"),
	Background:  lipgloss.Color("#000000"),
	Surface:     lipgloss.Color("#171717"),
	Border:      lipgloss.Color("#333333"),
	BorderFocus: lipgloss.Color("#FFFFFF"),
	Credit:      lipgloss.Color("#10B981"),
	Debit:       lipgloss.Color("#EF4444"),
	Heading:     lipgloss.Color("#FFFFFF"),
	Error:       lipgloss.Color("#EF4444"),
	Success:     lipgloss.Color("#10B981"),
	Warning:     lipgloss.Color("#F59E0B"),
	Info:        lipgloss.Color("#3B82F6"),
	TabActive:   lipgloss.Color("#333333"),
	TabInactive: lipgloss.Color("#171717"),
}

var Midnight = Theme{
	Name:        "midnight",
	Primary:     lipgloss.Color("#7C3AED"),
	Secondary:   lipgloss.Color("#06B6D4"),
	Accent:      lipgloss.Color("#F59E0B"),
	Text:        lipgloss.Color("#E2E8F0"),
	TextDim:     lipgloss.Color("#64748B"),
	TextBright:  lipgloss.Color("#F8FAFC"),
	Background:  lipgloss.Color("#0F172A"),
	Surface:     lipgloss.Color("#1E293B"),
	Border:      lipgloss.Color("#334155"),
	BorderFocus: lipgloss.Color("#7C3AED"),
	Credit:      lipgloss.Color("#22C55E"),
	Debit:       lipgloss.Color("#EF4444"),
	Heading:     lipgloss.Color("#A78BFA"),
	Error:       lipgloss.Color("#EF4444"),
	Success:     lipgloss.Color("#22C55E"),
	Warning:     lipgloss.Color("#F59E0B"),
	Info:        lipgloss.Color("#3B82F6"),
	TabActive:   lipgloss.Color("#7C3AED"),
	TabInactive: lipgloss.Color("#475569"),
}

var Nord = Theme{
	Name:        "nord",
	Primary:     lipgloss.Color("#88C0D0"),
	Secondary:   lipgloss.Color("#81A1C1"),
	Accent:      lipgloss.Color("#EBCB8B"),
	Text:        lipgloss.Color("#ECEFF4"),
	TextDim:     lipgloss.Color("#4C566A"),
	TextBright:  lipgloss.Color("#ECEFF4"),
	Background:  lipgloss.Color("#2E3440"),
	Surface:     lipgloss.Color("#3B4252"),
	Border:      lipgloss.Color("#434C5E"),
	BorderFocus: lipgloss.Color("#88C0D0"),
	Credit:      lipgloss.Color("#A3BE8C"),
	Debit:       lipgloss.Color("#BF616A"),
	Heading:     lipgloss.Color("#81A1C1"),
	Error:       lipgloss.Color("#BF616A"),
	Success:     lipgloss.Color("#A3BE8C"),
	Warning:     lipgloss.Color("#EBCB8B"),
	Info:        lipgloss.Color("#5E81AC"),
	TabActive:   lipgloss.Color("#88C0D0"),
	TabInactive: lipgloss.Color("#4C566A"),
}

// Current is the active theme.
var Current = Default

// Set changes the active theme by name.
func Set(name string) bool {
	if t, ok := themes[name]; ok {
		Current = t
		return true
	}
	return false
}

// List returns all available theme names, sorted.
func List() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
