package onboarding

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/profile"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// CompletedMsg is broadcast after the profile is saved so parent
// screens can refresh.
type CompletedMsg struct {
	User *profile.User
}

type step int

const (
	stepIndustry step = iota
	stepSubIndustry
	stepExperience
	stepSkills
	stepBio
	stepSaving
)

type savedMsg struct {
	user *profile.User
	err  error
}

// OnboardingScreen collects the career profile step by step.
type OnboardingScreen struct {
	profiles *profile.Service

	step        step
	industry    *profile.Industry
	subMenu     components.Menu
	subIndustry string
	expInput    components.TextInput
	skillsInput components.TextInput
	bioInput    components.TextInput
	indMenu     components.Menu
	errMsg      string
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates a new OnboardingScreen.
func New(profiles *profile.Service) *OnboardingScreen {
	s := &OnboardingScreen{
		profiles:    profiles,
		expInput:    components.NewTextInput("Years of experience", true, 2),
		skillsInput: components.NewTextInput("Skills, comma separated (e.g. Go, SQL)", false, 120),
		bioInput:    components.NewTextInput("One-line professional bio (optional)", false, 200),
	}

	items := make([]components.MenuItem, 0, len(profile.Industries))
	for i := range profile.Industries {
		ind := &profile.Industries[i]
		idx := i
		items = append(items, components.MenuItem{
			Label: ind.Name,
			Action: func() tea.Cmd {
				s.pickIndustry(idx)
				return nil
			},
		})
	}
	s.indMenu = components.NewMenu(items)
	return s
}

func (s *OnboardingScreen) pickIndustry(idx int) {
	s.industry = &profile.Industries[idx]

	items := make([]components.MenuItem, 0, len(s.industry.SubIndustries))
	for _, sub := range s.industry.SubIndustries {
		sub := sub
		items = append(items, components.MenuItem{
			Label: sub,
			Action: func() tea.Cmd {
				s.subIndustry = sub
				s.step = stepExperience
				return nil
			},
		})
	}
	s.subMenu = components.NewMenu(items)
	s.step = stepSubIndustry
}

func (s *OnboardingScreen) Init() tea.Cmd {
	return nil
}

func (s *OnboardingScreen) Title() string {
	return "Profile"
}

func (s *OnboardingScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepIndustry, stepSubIndustry:
		return []layout.KeyHint{
			{Key: "Up/Down", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(savedMsg); ok {
		if m.err != nil {
			s.errMsg = m.err.Error()
			s.step = stepBio
			return s, nil
		}
		return s, tea.Batch(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return CompletedMsg{User: m.user} },
		)
	}

	switch s.step {
	case stepIndustry:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		s.indMenu, cmd = s.indMenu.Update(msg)
		return s, cmd

	case stepSubIndustry:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
			s.step = stepIndustry
			return s, nil
		}
		var cmd tea.Cmd
		s.subMenu, cmd = s.subMenu.Update(msg)
		return s, cmd

	case stepExperience:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
			s.step = stepSubIndustry
			return s, nil
		}
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			if _, err := s.expInput.NumericValue(); err != nil {
				s.expInput.Submit(false)
				return s, nil
			}
			s.step = stepSkills
			return s, s.skillsInput.Init()
		}
		var cmd tea.Cmd
		s.expInput, cmd = s.expInput.Update(msg)
		return s, cmd

	case stepSkills:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
			s.step = stepExperience
			return s, nil
		}
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			s.step = stepBio
			return s, s.bioInput.Init()
		}
		var cmd tea.Cmd
		s.skillsInput, cmd = s.skillsInput.Update(msg)
		return s, cmd

	case stepBio:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
			s.step = stepSkills
			return s, nil
		}
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			s.step = stepSaving
			return s, s.save()
		}
		var cmd tea.Cmd
		s.bioInput, cmd = s.bioInput.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *OnboardingScreen) save() tea.Cmd {
	exp, _ := s.expInput.NumericValue()

	var skills []string
	for _, sk := range strings.Split(s.skillsInput.Value(), ",") {
		if sk = strings.TrimSpace(sk); sk != "" {
			skills = append(skills, sk)
		}
	}

	in := profile.Input{
		Industry:    s.industry.ID,
		SubIndustry: s.subIndustry,
		Experience:  exp,
		Skills:      skills,
		Bio:         strings.TrimSpace(s.bioInput.Value()),
	}

	return func() tea.Msg {
		user, err := s.profiles.Save(context.Background(), in)
		return savedMsg{user: user, err: err}
	}
}

func (s *OnboardingScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Set up your profile") + "\n\n")

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("  "+s.errMsg) + "\n\n")
	}

	switch s.step {
	case stepIndustry:
		b.WriteString(theme.Body.Render("  Pick your industry:") + "\n\n")
		b.WriteString(s.indMenu.View())
	case stepSubIndustry:
		b.WriteString(theme.Body.Render("  Pick your specialization in "+s.industry.Name+":") + "\n\n")
		b.WriteString(s.subMenu.View())
	case stepExperience:
		b.WriteString(theme.Body.Render("  Years of professional experience:") + "\n\n  ")
		b.WriteString(s.expInput.View())
	case stepSkills:
		b.WriteString(theme.Body.Render("  Your key skills:") + "\n\n  ")
		b.WriteString(s.skillsInput.View())
	case stepBio:
		b.WriteString(theme.Body.Render("  A short bio:") + "\n\n  ")
		b.WriteString(s.bioInput.View())
	case stepSaving:
		b.WriteString(theme.Hint.Render("  Saving profile..."))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(b.String())
}
