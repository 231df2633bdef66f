package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/xbank/internal/theme"
)

// HistoryItem is one navigation record as shown in the panel.
type HistoryItem struct {
	Screen string
	Label  string
	At     time.Time
}

// HistoryPanel lists the session's navigation trail, oldest first, with
// the current screen at the bottom.
type HistoryPanel struct {
	items    []HistoryItem
	max      int
	cursor   int
	offset   int // scroll offset for visible window
	width    int
	height   int
	visible  bool
	lastGKey bool // for gg detection within the panel
	now      func() time.Time
}

// NewHistoryPanel creates a new history panel.
func NewHistoryPanel() HistoryPanel {
	return HistoryPanel{now: time.Now}
}

// SetItems replaces the listed records and moves the cursor to the
// current (newest) one. max is the retention bound shown in the header.
func (hp *HistoryPanel) SetItems(items []HistoryItem, max int) {
	hp.items = items
	hp.max = max
	hp.cursor = len(items) - 1
	if hp.cursor < 0 {
		hp.cursor = 0
	}
	hp.ensureVisible()
}

// SetSize updates the panel dimensions.
func (hp *HistoryPanel) SetSize(w, h int) {
	hp.width = w
	hp.height = h
}

// Show makes the panel visible.
func (hp *HistoryPanel) Show() {
	hp.visible = true
	hp.lastGKey = false
}

// Hide closes the panel.
func (hp *HistoryPanel) Hide() {
	hp.visible = false
	hp.lastGKey = false
}

// IsVisible reports whether the panel is shown.
func (hp *HistoryPanel) IsVisible() bool {
	return hp.visible
}

// CursorUp moves the cursor to an older record.
func (hp *HistoryPanel) CursorUp() {
	hp.lastGKey = false
	if hp.cursor > 0 {
		hp.cursor--
		hp.ensureVisible()
	}
}

// CursorDown moves the cursor to a newer record.
func (hp *HistoryPanel) CursorDown() {
	hp.lastGKey = false
	if hp.cursor < len(hp.items)-1 {
		hp.cursor++
		hp.ensureVisible()
	}
}

// GotoTop moves to the oldest record.
func (hp *HistoryPanel) GotoTop() {
	hp.lastGKey = false
	hp.cursor = 0
	hp.offset = 0
}

// GotoBottom moves to the current record.
func (hp *HistoryPanel) GotoBottom() {
	hp.lastGKey = false
	if len(hp.items) > 0 {
		hp.cursor = len(hp.items) - 1
		hp.ensureVisible()
	}
}

// HandleGKey handles the "g" key for gg detection.
// Returns true if "gg" was completed (go to top).
func (hp *HistoryPanel) HandleGKey() bool {
	if hp.lastGKey {
		hp.GotoTop()
		return true
	}
	hp.lastGKey = true
	return false
}

// ResetGKey resets the g key state (called on any non-g key press).
func (hp *HistoryPanel) ResetGKey() {
	hp.lastGKey = false
}

// Selected returns the record at the cursor.
func (hp *HistoryPanel) Selected() (HistoryItem, bool) {
	if len(hp.items) == 0 || hp.cursor < 0 || hp.cursor >= len(hp.items) {
		return HistoryItem{}, false
	}
	return hp.items[hp.cursor], true
}

// visibleCount returns how many records fit below the two header lines.
func (hp *HistoryPanel) visibleCount() int {
	available := hp.height - 3
	if available < 1 {
		return 1
	}
	return available
}

// ensureVisible adjusts offset so the cursor is within the visible window.
func (hp *HistoryPanel) ensureVisible() {
	visible := hp.visibleCount()
	if hp.cursor < hp.offset {
		hp.offset = hp.cursor
	}
	if hp.cursor >= hp.offset+visible {
		hp.offset = hp.cursor - visible + 1
	}
	if hp.offset < 0 {
		hp.offset = 0
	}
}

// View renders the history panel.
func (hp *HistoryPanel) View() string {
	if !hp.visible {
		return ""
	}

	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(hp.width).
		Height(hp.height).
		Background(t.Background)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Background(t.Surface).
		Width(hp.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.TabActive).
		Bold(true).
		Width(hp.width).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(hp.width).
		Padding(0, 1)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Histórico %d/%d", len(hp.items), hp.max)))
	sb.WriteString("\n")

	sepWidth := hp.width - 2
	if sepWidth < 1 {
		sepWidth = 1
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	sb.WriteString("\n")

	if len(hp.items) == 0 {
		sb.WriteString(dimStyle.Render("Nenhuma tela visitada."))
		sb.WriteString("\n")
		return panelStyle.Render(sb.String())
	}

	end := hp.offset + hp.visibleCount()
	if end > len(hp.items) {
		end = len(hp.items)
	}

	for i := hp.offset; i < end; i++ {
		item := hp.items[i]
		marker := "  "
		if i == len(hp.items)-1 {
			marker = "● "
		}
		line := fmt.Sprintf("%s%d. %s  %s", marker, i+1, item.Label, timeAgo(hp.now().Sub(item.At)))

		if i == hp.cursor {
			sb.WriteString(selectedStyle.Render(line))
		} else {
			sb.WriteString(normalStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	return panelStyle.Render(sb.String())
}

// timeAgo returns a short relative time string.
func timeAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "agora"
	case d < time.Hour:
		return fmt.Sprintf("%dmin", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
