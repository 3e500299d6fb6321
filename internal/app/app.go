package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/attempts"
	"github.com/prepdeck/prepdeck/internal/insights"
	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/resume"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/home"
	"github.com/prepdeck/prepdeck/internal/screens/onboarding"
	quizscreen "github.com/prepdeck/prepdeck/internal/screens/quiz"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// Options carries the services the TUI needs. AIReady is false when no
// LLM provider could be configured; AI-backed entries are disabled.
type Options struct {
	Profiles *profile.Service
	Attempts *attempts.Service
	Insights *insights.Service
	Resumes  *resume.Service
	AIReady  bool

	// StartQuiz jumps straight into a quiz on launch (the quiz
	// subcommand). Zero means the default question count.
	StartQuiz     bool
	QuizQuestions int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts     Options
	router   *router.Router
	industry string
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		opts: opts,
		router: router.New(home.New(home.Deps{
			Profiles: opts.Profiles,
			Attempts: opts.Attempts,
			Insights: opts.Insights,
			Resumes:  opts.Resumes,
		}, opts.AIReady)),
	}
	if user, err := opts.Profiles.Current(context.Background()); err == nil {
		m.industry = user.Industry
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.opts.StartQuiz {
		return m.router.Push(quizscreen.New(m.opts.Attempts, m.opts.QuizQuestions))
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case onboarding.CompletedMsg:
		if msg.User != nil {
			m.industry = msg.User.Industry
		}
		// Fall through to the router so the home screen refreshes too.

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.industry, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Up/Down", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
