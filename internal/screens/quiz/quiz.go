package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/attempts"
	quizcore "github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/quizgen"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

type quizReadyMsg struct {
	set *quizgen.QuestionSet
}

type quizFailedMsg struct {
	err error
}

type attemptSavedMsg struct {
	attempt *attempts.Attempt
	err     error
}

// QuizScreen runs one quiz from generation through saved results.
type QuizScreen struct {
	svc     *attempts.Service
	count   int
	session *quizcore.Session
	mc      components.MultiChoice
	saving  bool
	saved   *attempts.Attempt
	saveErr error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. count <= 0 uses the configured default
// question count.
func New(svc *attempts.Service, count int) *QuizScreen {
	return &QuizScreen{
		svc:     svc,
		count:   count,
		session: quizcore.NewSession(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.generate()
}

func (s *QuizScreen) generate() tea.Cmd {
	return func() tea.Msg {
		set, err := s.svc.GenerateQuiz(context.Background(), s.count)
		if err != nil {
			return quizFailedMsg{err: err}
		}
		return quizReadyMsg{set: set}
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.State() {
	case quizcore.StateInProgress:
		if s.mc.Submitted {
			return []layout.KeyHint{
				{Key: "E", Description: "Explanation"},
				{Key: "Enter", Description: "Next"},
				{Key: "Esc", Description: "Abandon"},
			}
		}
		return []layout.KeyHint{
			{Key: "Up/Down", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Abandon"},
		}
	case quizcore.StateFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case quizcore.StateCompleted:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		if err := s.session.Start(msg.set); err != nil {
			s.session.Fail(err)
			return s, nil
		}
		s.loadCurrent()
		return s, nil

	case quizFailedMsg:
		s.session.Fail(msg.err)
		return s, nil

	case attemptSavedMsg:
		s.saving = false
		s.saved = msg.attempt
		s.saveErr = msg.err
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.session.State() {
	case quizcore.StateFailed:
		if msg.String() == "r" {
			s.session.Restart()
			return s, s.generate()
		}
		return s, nil

	case quizcore.StateInProgress:
		if s.mc.Submitted {
			switch msg.String() {
			case "enter":
				return s.advance()
			case "e":
				var cmd tea.Cmd
				s.mc, cmd = s.mc.Update(msg)
				if s.mc.ShowExplain {
					// Session tracks the reveal so a quiz cannot leak
					// explanations before an answer exists.
					_ = s.session.RevealExplanation()
				}
				return s, cmd
			}
			return s, nil
		}

		before := s.mc.Submitted
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if !before && s.mc.Submitted {
			if err := s.session.SelectAnswer(s.mc.Choice()); err != nil {
				// Out-of-band selection; resync the component.
				s.loadCurrent()
			}
		}
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.session.Advance(); err != nil {
		return s, nil
	}
	if s.session.State() == quizcore.StateCompleted {
		return s, s.save()
	}
	s.loadCurrent()
	return s, nil
}

func (s *QuizScreen) save() tea.Cmd {
	s.saving = true
	set := s.session.Questions()
	answers := s.session.Answers()

	outcome, err := quizcore.Score(set, answers)
	if err != nil {
		return func() tea.Msg { return attemptSavedMsg{err: err} }
	}

	return func() tea.Msg {
		attempt, err := s.svc.SaveAttempt(context.Background(), attempts.SaveInput{
			Questions:    set,
			Answers:      answers,
			ClaimedScore: outcome.Score,
		})
		return attemptSavedMsg{attempt: attempt, err: err}
	}
}

func (s *QuizScreen) loadCurrent() {
	q, _ := s.session.Current()
	if q == nil {
		return
	}
	correct := 0
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			correct = i
			break
		}
	}
	s.mc = components.NewMultiChoice(q.Text, q.Options, correct, q.Explanation)
}

func (s *QuizScreen) View(width, height int) string {
	var content string

	switch s.session.State() {
	case quizcore.StateNotStarted:
		content = theme.Hint.Render("Generating your quiz...")

	case quizcore.StateFailed:
		content = theme.Incorrect.Render("Quiz generation failed") + "\n\n" +
			theme.Body.Render(errText(s.session.FailCause())) + "\n\n" +
			theme.Hint.Render("Press R to retry or Esc to go back.")

	case quizcore.StateInProgress:
		_, idx := s.session.Current()
		head := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", idx+1, s.session.Len()))
		content = head + "\n\n" + s.mc.View()
		if s.mc.Submitted {
			if s.mc.IsCorrect() {
				content += "\n" + theme.Correct.Render("Correct!")
			} else {
				content += "\n" + theme.Incorrect.Render("Not quite.")
			}
			if !s.mc.ShowExplain && s.mc.Explanation != "" {
				content += "  " + theme.Hint.Render("Press E for the explanation.")
			}
		}

	case quizcore.StateCompleted:
		content = s.renderResults()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(content)
}

func (s *QuizScreen) renderResults() string {
	var b strings.Builder

	if s.saving {
		b.WriteString(theme.Hint.Render("Scoring and saving your attempt..."))
		return b.String()
	}
	if s.saveErr != nil {
		b.WriteString(theme.Incorrect.Render("Could not save this attempt") + "\n\n")
		b.WriteString(theme.Body.Render(s.saveErr.Error()))
		return b.String()
	}
	if s.saved == nil {
		return theme.Hint.Render("Finishing up...")
	}

	b.WriteString(theme.Title.Render("Quiz complete!") + "\n\n")
	b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("Score: %d%%", s.saved.QuizScore)) + "\n\n")

	for i, r := range s.saved.Results {
		mark := theme.Correct.Render("+")
		if !r.IsCorrect {
			mark = theme.Incorrect.Render("x")
		}
		b.WriteString(fmt.Sprintf(" %s Q%d: %s\n", mark, i+1, truncate(r.Question, 70)))
	}

	if s.saved.ImprovementTip != "" {
		b.WriteString("\n" + theme.Body.Foreground(theme.Accent).Render("Coach's tip: ") +
			theme.Body.Render(s.saved.ImprovementTip) + "\n")
	}

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
