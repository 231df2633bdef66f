package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/xbank/internal/theme"
)

// BreadcrumbSeparator sits between breadcrumb entries.
const BreadcrumbSeparator = " › "

// Header shows the screen title, a back marker while there is somewhere
// to go back to, and the breadcrumb trail once it has more than one entry.
type Header struct {
	title       string
	subtitle    string
	canGoBack   bool
	breadcrumbs []string
	width       int
}

// NewHeader creates an empty header.
func NewHeader() Header {
	return Header{}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(w int) {
	h.width = w
}

// SetTitle sets the title and optional subtitle.
func (h *Header) SetTitle(title, subtitle string) {
	h.title = title
	h.subtitle = subtitle
}

// SetNavigation updates the back marker and breadcrumb trail.
func (h *Header) SetNavigation(canGoBack bool, breadcrumbs []string) {
	h.canGoBack = canGoBack
	h.breadcrumbs = breadcrumbs
}

// Breadcrumbs renders the trail as plain text, or "" when it would show
// a single entry.
func Breadcrumbs(names []string) string {
	if len(names) < 2 {
		return ""
	}
	return strings.Join(names, BreadcrumbSeparator)
}

// View renders the header.
func (h *Header) View() string {
	t := theme.Current

	barStyle := lipgloss.NewStyle().
		Background(t.Background).
		Width(h.width)

	backStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Bold(true).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Heading).
		Bold(true).
		Padding(0, 1)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	back := "   "
	if h.canGoBack {
		back = backStyle.Render("←")
	}

	var sb strings.Builder
	sb.WriteString(barStyle.Render(back + titleStyle.Render(h.title)))
	if h.subtitle != "" {
		sb.WriteString("\n")
		sb.WriteString(barStyle.Render("   " + subtitleStyle.Render(h.subtitle)))
	}

	if crumbs := Breadcrumbs(h.breadcrumbs); crumbs != "" {
		crumbStyle := lipgloss.NewStyle().
			Foreground(t.TextDim).
			Background(t.Surface).
			Width(h.width).
			Padding(0, 1)
		sb.WriteString("\n")
		sb.WriteString(crumbStyle.Render(crumbs))
	}

	return sb.String()
}
