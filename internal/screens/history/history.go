package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/attempts"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

type historyLoadedMsg struct {
	attempts []attempts.Attempt
	err      error
}

// HistoryScreen displays past quiz attempts.
type HistoryScreen struct {
	svc      *attempts.Service
	attempts []attempts.Attempt
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *attempts.Service) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		list, err := s.svc.ListAttempts(context.Background())
		return historyLoadedMsg{attempts: list, err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "Up/Down", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.attempts = msg.attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder

	switch {
	case s.errMsg != "":
		b.WriteString(theme.Incorrect.Render("Could not load history: " + s.errMsg))
	case !s.loaded:
		b.WriteString(theme.Hint.Render("Loading history..."))
	case len(s.attempts) == 0:
		b.WriteString(theme.Hint.Render("No attempts yet. Take a quiz to build your history."))
	default:
		b.WriteString(s.renderList(width))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (s *HistoryScreen) renderList(width int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Attempt history") + "\n\n")

	for i, a := range s.attempts {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		correct := 0
		for _, r := range a.Results {
			if r.IsCorrect {
				correct++
			}
		}
		line := fmt.Sprintf("%s%s  %s  score %d%%  (%d/%d correct)",
			prefix,
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
			a.Category,
			a.QuizScore,
			correct, len(a.Results))
		b.WriteString(style.Render(line) + "\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetails(a, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderDetails(a attempts.Attempt, width int) string {
	var b strings.Builder

	for j, r := range a.Results {
		mark := theme.Correct.Render("+")
		if !r.IsCorrect {
			mark = theme.Incorrect.Render("x")
		}
		b.WriteString(fmt.Sprintf("      %s Q%d: %s\n", mark, j+1, clip(r.Question, width-16)))
		if !r.IsCorrect {
			answered := r.UserAnswer
			if answered == "" {
				answered = "(unanswered)"
			}
			b.WriteString(theme.Hint.Render(fmt.Sprintf(
				"          you: %s, correct: %s", answered, r.Answer)) + "\n")
		}
	}
	if a.ImprovementTip != "" {
		b.WriteString(theme.Hint.Render("      tip: "+clip(a.ImprovementTip, width-12)) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func clip(s string, n int) string {
	if n < 10 {
		n = 10
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
