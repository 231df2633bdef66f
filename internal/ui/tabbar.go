package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/xbank/internal/theme"
)

// Tab is a bottom-bar entry pointing at a screen.
type Tab struct {
	Screen string
	Label  string
}

// TabBar renders the bottom tab navigator. The active tab follows the
// current screen; screens that are not tabs leave no tab highlighted.
type TabBar struct {
	tabs   []Tab
	active string
	width  int
}

// NewTabBar creates a tab bar for the given tabs.
func NewTabBar(tabs []Tab) TabBar {
	return TabBar{tabs: tabs}
}

// SetWidth sets the tab bar width.
func (tb *TabBar) SetWidth(w int) {
	tb.width = w
}

// SetLabels replaces the tab labels, e.g. after a language change.
func (tb *TabBar) SetLabels(label func(screen string) string) {
	for i := range tb.tabs {
		tb.tabs[i].Label = label(tb.tabs[i].Screen)
	}
}

// SetActive highlights the tab for screen.
func (tb *TabBar) SetActive(screen string) {
	tb.active = screen
}

// Active returns the highlighted screen.
func (tb *TabBar) Active() string {
	return tb.active
}

// At returns the screen of the 1-based tab n.
func (tb *TabBar) At(n int) (string, bool) {
	if n < 1 || n > len(tb.tabs) {
		return "", false
	}
	return tb.tabs[n-1].Screen, true
}

// Count returns the number of tabs.
func (tb *TabBar) Count() int {
	return len(tb.tabs)
}

// View renders the tab bar.
func (tb *TabBar) View() string {
	t := theme.Current

	activeStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.TabActive).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.TabInactive).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	var result string
	for i, tab := range tb.tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label)
		if tab.Screen == tb.active {
			result += activeStyle.Render(label)
		} else {
			result += inactiveStyle.Render(label)
		}
		if i < len(tb.tabs)-1 {
			result += separatorStyle.Render("|")
		}
	}

	barStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(tb.width)

	return barStyle.Render(result)
}
