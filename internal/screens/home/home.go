package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/attempts"
	"github.com/prepdeck/prepdeck/internal/insights"
	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/resume"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/dashboard"
	"github.com/prepdeck/prepdeck/internal/screens/history"
	"github.com/prepdeck/prepdeck/internal/screens/onboarding"
	quizscreen "github.com/prepdeck/prepdeck/internal/screens/quiz"
	"github.com/prepdeck/prepdeck/internal/screens/resumeview"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// Deps carries the services the home screen and its children need.
type Deps struct {
	Profiles *profile.Service
	Attempts *attempts.Service
	Insights *insights.Service
	Resumes  *resume.Service
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps    Deps
	menu    components.Menu
	user    *profile.User
	stats   *store.AttemptStats
	aiReady bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. aiReady signals whether an LLM
// provider is configured; quiz and insight entries are disabled
// without one.
func New(deps Deps, aiReady bool) *HomeScreen {
	h := &HomeScreen{deps: deps, aiReady: aiReady}

	ctx := context.Background()
	if user, err := deps.Profiles.Current(ctx); err == nil {
		h.user = user
		if stats, err := deps.Attempts.Stats(ctx); err == nil {
			h.stats = stats
		}
	}

	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	onboarded := h.user != nil

	return []components.MenuItem{
		{
			Label:    "TAKE QUIZ",
			Disabled: !onboarded || !h.aiReady,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quizscreen.New(h.deps.Attempts, 0)}
				}
			},
		},
		{
			Label:    "HISTORY",
			Disabled: !onboarded,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(h.deps.Attempts)}
				}
			},
		},
		{
			Label:    "INDUSTRY INSIGHTS",
			Disabled: !onboarded || !h.aiReady,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: dashboard.New(h.deps.Insights)}
				}
			},
		},
		{
			Label:    "RESUME",
			Disabled: !onboarded,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: resumeview.New(h.deps.Resumes)}
				}
			},
		},
		{
			Label: "PROFILE",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: onboarding.New(h.deps.Profiles)}
				}
			},
		},
		{
			Label:  "EXIT",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(onboarding.CompletedMsg); ok {
		// Profile changed underneath us; rebuild menu and stats.
		return New(h.deps, h.aiReady), nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("P R E P D E C K")
	subtitle := theme.Subtitle.Width(width).Render("AI interview prep in your terminal")
	sections = append(sections, title, subtitle, "")

	if h.user == nil {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Create a profile to unlock quizzes and insights."))
	} else {
		sections = append(sections, h.renderStats(width))
	}
	if !h.aiReady {
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No LLM provider configured. Set PREPDECK_GEMINI_API_KEY or another provider key."))
	}

	sections = append(sections, "", h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderStats(width int) string {
	if h.stats == nil || h.stats.Count == 0 {
		return theme.Hint.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("%s, no attempts yet", h.user.Industry))
	}
	line := fmt.Sprintf("%s   attempts: %d   avg score: %.0f%%   last: %d%%",
		h.user.Industry, h.stats.Count, h.stats.AverageScore, h.stats.LatestScore)
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Width(width).
		Align(lipgloss.Center).
		Render(line)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
