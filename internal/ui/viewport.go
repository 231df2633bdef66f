package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ScreenViewport wraps bubbles/viewport for the rendered screen body.
type ScreenViewport struct {
	viewport viewport.Model
	ready    bool
	content  string
}

// NewScreenViewport creates a new viewport (dimensions set on first WindowSizeMsg).
func NewScreenViewport() ScreenViewport {
	return ScreenViewport{}
}

// SetSize updates the viewport dimensions.
func (sv *ScreenViewport) SetSize(width, height int) {
	if !sv.ready {
		sv.viewport = viewport.New(width, height)
		sv.viewport.MouseWheelEnabled = true
		sv.viewport.MouseWheelDelta = 3
		sv.ready = true
		if sv.content != "" {
			sv.viewport.SetContent(sv.content)
		}
		return
	}
	sv.viewport.Width = width
	sv.viewport.Height = height
}

// SetContent replaces the viewport content. The scroll position is kept
// when the content is unchanged so re-renders do not jump to the top.
func (sv *ScreenViewport) SetContent(content string) {
	if content == sv.content {
		return
	}
	sv.content = content
	if !sv.ready {
		return
	}
	sv.viewport.SetContent(content)
	sv.viewport.GotoTop()
}

// Update forwards messages to the viewport.
func (sv *ScreenViewport) Update(msg tea.Msg) (*ScreenViewport, tea.Cmd) {
	if !sv.ready {
		return sv, nil
	}
	var cmd tea.Cmd
	sv.viewport, cmd = sv.viewport.Update(msg)
	return sv, cmd
}

// View renders the viewport.
func (sv *ScreenViewport) View() string {
	if !sv.ready {
		return "\n  Carregando..."
	}
	return sv.viewport.View()
}

// ScrollInfo returns a string like "42%" or "TOP" or "BOT". It is empty
// when the content fits on screen.
func (sv *ScreenViewport) ScrollInfo() string {
	if !sv.ready || sv.viewport.TotalLineCount() <= sv.viewport.Height {
		return ""
	}
	pct := sv.viewport.ScrollPercent()
	switch {
	case pct <= 0:
		return "TOP"
	case pct >= 1:
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", int(pct*100))
	}
}

// HalfPageDown scrolls down half a page.
func (sv *ScreenViewport) HalfPageDown() {
	if sv.ready {
		sv.viewport.HalfViewDown()
	}
}

// HalfPageUp scrolls up half a page.
func (sv *ScreenViewport) HalfPageUp() {
	if sv.ready {
		sv.viewport.HalfViewUp()
	}
}

// LineDown scrolls down n lines.
func (sv *ScreenViewport) LineDown(n int) {
	if sv.ready {
		sv.viewport.LineDown(n)
	}
}

// LineUp scrolls up n lines.
func (sv *ScreenViewport) LineUp(n int) {
	if sv.ready {
		sv.viewport.LineUp(n)
	}
}

// GotoTop scrolls to the top.
func (sv *ScreenViewport) GotoTop() {
	if sv.ready {
		sv.viewport.GotoTop()
	}
}

// GotoBottom scrolls to the bottom.
func (sv *ScreenViewport) GotoBottom() {
	if sv.ready {
		sv.viewport.GotoBottom()
	}
}

// Width returns the viewport width.
func (sv *ScreenViewport) Width() int {
	if !sv.ready {
		return 0
	}
	return sv.viewport.Width
}

// Height returns the viewport height.
func (sv *ScreenViewport) Height() int {
	if !sv.ready {
		return 0
	}
	return sv.viewport.Height
}
