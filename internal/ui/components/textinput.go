package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

var (
	inputOKMark  = lipgloss.NewStyle().Foreground(theme.Success).Render("ok")
	inputBadMark = lipgloss.NewStyle().Foreground(theme.Error).Render("!!")
)

// TextInput wraps bubbles/textinput with app styling and optional
// numeric filtering. After Submit it shows a pass or fail mark next to
// the field.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	submitted   bool
	valid       bool
}

// NewTextInput builds a focused input. charLimit of 0 means unlimited.
func NewTextInput(placeholder string, numericOnly bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, NumericOnly: numericOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the inner model. In numeric mode,
// printable non-digit keys are dropped before they reach it.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if key, ok := msg.(tea.KeyMsg); ok {
			if s := key.String(); len(s) == 1 && (s[0] < '0' || s[0] > '9') {
				return t, nil
			}
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	view := t.Model.View()
	switch {
	case t.submitted && t.valid:
		view += " " + inputOKMark
	case t.submitted:
		view += " " + inputBadMark
	}
	return view
}

// Value returns the raw input text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the input as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Submit records a validation result to display next to the field.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
