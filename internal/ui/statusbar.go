package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/xbank/internal/theme"
)

// Status bar modes.
const (
	ModeNormal  = "NORMAL"
	ModeInsert  = "INSERT"
	ModeHistory = "HISTORY"
	ModeHelp    = "HELP"
)

// MessageKind selects the color of a status message.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageError
)

// StatusBar shows the mode, a transient message and the session owner.
type StatusBar struct {
	mode       string
	message    string
	kind       MessageKind
	user       string
	protection bool
	scrollInfo string
	width      int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{
		mode: ModeNormal,
	}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetMode sets the current mode indicator.
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// Mode returns the current mode.
func (s *StatusBar) Mode() string {
	return s.mode
}

// SetUser sets the signed-in user's display name; empty hides it.
func (s *StatusBar) SetUser(name string) {
	s.user = name
}

// SetProtection toggles the shield indicator.
func (s *StatusBar) SetProtection(on bool) {
	s.protection = on
}

// SetScrollInfo sets the scroll position string (e.g. "42%", "TOP", "BOT").
func (s *StatusBar) SetScrollInfo(info string) {
	s.scrollInfo = info
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string, kind MessageKind) {
	s.message = msg
	s.kind = kind
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.message
}

// ClearMessage removes the status message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.Current

	modeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Background).
		Padding(0, 1)

	switch s.mode {
	case ModeNormal:
		modeStyle = modeStyle.Background(t.Primary)
	case ModeInsert:
		modeStyle = modeStyle.Background(t.Success)
	case ModeHistory:
		modeStyle = modeStyle.Background(t.Secondary)
	default:
		modeStyle = modeStyle.Background(t.Accent)
	}

	mode := modeStyle.Render(s.mode)

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	var left string
	if s.message != "" {
		color := t.Info
		switch s.kind {
		case MessageSuccess:
			color = t.Success
		case MessageError:
			color = t.Error
		}
		msgStyle := lipgloss.NewStyle().
			Foreground(color).
			Background(t.Surface).
			Padding(0, 1)
		left = msgStyle.Render(s.message)
	}

	rightStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Padding(0, 1)

	var right string
	if s.protection {
		shieldStyle := rightStyle.Foreground(t.Success)
		right += shieldStyle.Render("🛡")
	}
	if s.user != "" {
		right += rightStyle.Render(s.user)
	}
	if s.scrollInfo != "" {
		scrollStyle := rightStyle.Bold(true).Foreground(t.Secondary)
		right += scrollStyle.Render(s.scrollInfo)
	}

	modeWidth := lipgloss.Width(mode)
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	spacerWidth := s.width - modeWidth - leftWidth - rightWidth
	if spacerWidth < 0 {
		spacerWidth = 0
	}

	spacerStyle := lipgloss.NewStyle().
		Background(t.Surface)
	spacer := spacerStyle.Render(fmt.Sprintf("%*s", spacerWidth, ""))

	return barStyle.Render(mode + left + spacer + right)
}
