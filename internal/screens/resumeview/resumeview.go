package resumeview

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/resume"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

type resumeLoadedMsg struct {
	markdown string
	err      error
}

// ResumeScreen shows the saved resume rendered as Markdown. Editing
// and AI rewriting happen through the resume subcommands.
type ResumeScreen struct {
	svc    *resume.Service
	lines  []string
	offset int
	loaded bool
	errMsg string
}

var _ screen.Screen = (*ResumeScreen)(nil)
var _ screen.KeyHintProvider = (*ResumeScreen)(nil)

// New creates a new ResumeScreen.
func New(svc *resume.Service) *ResumeScreen {
	return &ResumeScreen{svc: svc}
}

func (s *ResumeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		r, err := s.svc.Get(context.Background())
		if err != nil {
			return resumeLoadedMsg{err: err}
		}
		return resumeLoadedMsg{markdown: r.Markdown()}
	}
}

func (s *ResumeScreen) Title() string {
	return "Resume"
}

func (s *ResumeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Up/Down", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResumeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resumeLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.lines = strings.Split(strings.TrimRight(msg.markdown, "\n"), "\n")
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.lines)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *ResumeScreen) View(width, height int) string {
	var content string

	switch {
	case s.errMsg != "":
		content = theme.Incorrect.Render("Could not load resume: " + s.errMsg)
	case !s.loaded:
		content = theme.Hint.Render("Loading resume...")
	case len(s.lines) == 0 || (len(s.lines) == 1 && s.lines[0] == ""):
		content = theme.Hint.Render("No resume saved yet. Use `prepdeck resume` to build one.")
	default:
		visible := height - 2
		if visible < 1 {
			visible = 1
		}
		end := s.offset + visible
		if end > len(s.lines) {
			end = len(s.lines)
		}
		content = theme.Body.Render(strings.Join(s.lines[s.offset:end], "\n"))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(content)
}
