package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for xbank.
type KeyMap struct {
	// Scrolling
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// Navigation
	Tab          key.Binding
	Transactions key.Binding
	Bills        key.Binding
	Back         key.Binding
	BackOrHome   key.Binding

	// Screen actions
	Edit             key.Binding
	Filter           key.Binding
	SelectBill       key.Binding
	PayBill          key.Binding
	ToggleBalance    key.Binding
	ToggleProtection key.Binding
	Logout           key.Binding

	// Modes
	CommandMode   key.Binding
	HistoryToggle key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default vim-style keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "scroll up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("Ctrl+d", "half page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("Ctrl+u", "half page up"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Tab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "switch tab"),
		),
		Transactions: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "statement"),
		),
		Bills: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bills"),
		),
		Back: key.NewBinding(
			key.WithKeys("H", "backspace"),
			key.WithHelp("H/backspace", "go back"),
		),
		BackOrHome: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back or home"),
		),
		Edit: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "fill form"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next filter"),
		),
		SelectBill: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n/N", "next/previous bill"),
		),
		PayBill: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "pay selected bill"),
		),
		ToggleBalance: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "show/hide balance"),
		),
		ToggleProtection: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle protection"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log out"),
		),
		CommandMode: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command mode"),
		),
		HistoryToggle: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("Ctrl+h", "toggle history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
