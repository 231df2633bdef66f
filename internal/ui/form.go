package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/xbank/internal/theme"
)

// Field describes one input of a Form.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Secret      bool
	CharLimit   int
}

// Form is a stack of labelled text inputs with one focused at a time.
// Enter handling is left to the parent so it can validate and submit.
type Form struct {
	title  string
	fields []Field
	inputs []textinput.Model
	focus  int
	active bool
	width  int
}

// NewForm creates an inactive form.
func NewForm() Form {
	return Form{}
}

// SetWidth updates the form width.
func (f *Form) SetWidth(w int) {
	f.width = w
	for i := range f.inputs {
		f.inputs[i].Width = w - 8 // account for prompt and padding
	}
}

// Open activates the form with fresh inputs for fields.
func (f *Form) Open(title string, fields []Field) tea.Cmd {
	f.title = title
	f.fields = fields
	f.inputs = make([]textinput.Model, len(fields))
	for i, fd := range fields {
		ti := textinput.New()
		ti.Placeholder = fd.Placeholder
		ti.Prompt = "› "
		ti.CharLimit = 256
		if fd.CharLimit > 0 {
			ti.CharLimit = fd.CharLimit
		}
		if fd.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		if f.width > 0 {
			ti.Width = f.width - 8
		}
		f.inputs[i] = ti
	}
	f.focus = 0
	f.active = true
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[0].Focus()
}

// Close deactivates the form and drops its inputs.
func (f *Form) Close() {
	f.active = false
	f.inputs = nil
	f.fields = nil
	f.focus = 0
}

// IsActive reports whether the form is open.
func (f *Form) IsActive() bool {
	return f.active
}

// Title returns the form title.
func (f *Form) Title() string {
	return f.title
}

// Value returns the trimmed value of the named field.
func (f *Form) Value(name string) string {
	for i, fd := range f.fields {
		if fd.Name == name {
			return strings.TrimSpace(f.inputs[i].Value())
		}
	}
	return ""
}

// SetValue sets the value of the named field.
func (f *Form) SetValue(name, val string) {
	for i, fd := range f.fields {
		if fd.Name == name {
			f.inputs[i].SetValue(val)
			f.inputs[i].SetCursor(len(val))
			return
		}
	}
}

// OnLastField reports whether the last input has focus.
func (f *Form) OnLastField() bool {
	return f.focus == len(f.inputs)-1
}

// Next moves focus to the following input, wrapping around.
func (f *Form) Next() tea.Cmd {
	return f.setFocus((f.focus + 1) % max(len(f.inputs), 1))
}

// Prev moves focus to the previous input, wrapping around.
func (f *Form) Prev() tea.Cmd {
	n := max(len(f.inputs), 1)
	return f.setFocus((f.focus - 1 + n) % n)
}

func (f *Form) setFocus(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// Update processes messages for the focused input.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if !f.active || len(f.inputs) == 0 {
		return f, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			f.Close()
			return f, nil
		case tea.KeyEnter:
			// Handled by the parent to validate and submit.
			return f, nil
		case tea.KeyTab, tea.KeyDown:
			return f, f.Next()
		case tea.KeyShiftTab, tea.KeyUp:
			return f, f.Prev()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// View renders the form.
func (f *Form) View() string {
	if !f.active {
		return ""
	}

	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Heading).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(f.title))
	sb.WriteString("\n")

	for i, fd := range f.fields {
		boxStyle := lipgloss.NewStyle().
			Foreground(t.TextDim).
			Background(t.Surface).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(f.width - 2)
		if i == f.focus {
			boxStyle = boxStyle.
				Foreground(t.Text).
				BorderForeground(t.BorderFocus)
		}

		sb.WriteString(labelStyle.Render(fd.Label))
		sb.WriteString("\n")
		sb.WriteString(boxStyle.Render(f.inputs[i].View()))
		sb.WriteString("\n")
	}

	return sb.String()
}
