package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

var (
	mcQuestionStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	mcOptionStyle   = lipgloss.NewStyle().Foreground(theme.Text)
	mcCursorStyle   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	mcDimStyle      = lipgloss.NewStyle().Foreground(theme.TextDim)
	mcExplainStyle  = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
)

// MultiChoice is the selector for one quiz question. Once the answer
// is locked in it recolors the options to show the outcome, and "e"
// toggles the explanation.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Explanation  string
	Selected     int
	Submitted    bool
	ChosenIndex  int
	ShowExplain  bool
}

func NewMultiChoice(question string, options []string, correctIndex int, explanation string) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  explanation,
		ChosenIndex:  -1,
	}
}

func (m MultiChoice) Init() tea.Cmd { return nil }

// Update moves the cursor before submission and handles the
// explanation toggle after.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.Submitted {
		if key.String() == "e" && m.Explanation != "" {
			m.ShowExplain = !m.ShowExplain
		}
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}
	return m, nil
}

// optionStyle picks the rendering for option i given the current state.
func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	if m.Submitted {
		switch i {
		case m.CorrectIndex:
			return theme.Correct
		case m.ChosenIndex:
			return theme.Incorrect
		default:
			return mcDimStyle
		}
	}
	if i == m.Selected {
		return mcCursorStyle
	}
	return mcOptionStyle
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(mcQuestionStyle.Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < 26 {
			label = string(rune('A' + i))
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)
		b.WriteString(m.optionStyle(i).Render(line))
		b.WriteByte('\n')
	}

	if m.Submitted && m.ShowExplain && m.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(mcExplainStyle.Render("Explanation: " + m.Explanation))
		b.WriteByte('\n')
	}
	return b.String()
}

// Choice returns the chosen option text, or "" before submission.
func (m MultiChoice) Choice() string {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return ""
	}
	return m.Options[m.ChosenIndex]
}

// IsCorrect reports whether the locked-in answer matches the key.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
