package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/insights"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

type insightLoadedMsg struct {
	report *insights.Report
	err    error
}

// DashboardScreen shows the AI market analysis for the user's industry.
type DashboardScreen struct {
	svc    *insights.Service
	report *insights.Report
	loaded bool
	errMsg string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(svc *insights.Service) *DashboardScreen {
	return &DashboardScreen{svc: svc}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		report, err := s.svc.Get(context.Background())
		return insightLoadedMsg{report: report, err: err}
	}
}

func (s *DashboardScreen) Title() string {
	return "Insights"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case insightLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.report = msg.report
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	var content string

	switch {
	case s.errMsg != "":
		content = theme.Incorrect.Render("Could not load insights: " + s.errMsg)
	case !s.loaded:
		content = theme.Hint.Render("Analyzing your industry...")
	default:
		content = s.renderReport(width)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(content)
}

func (s *DashboardScreen) renderReport(width int) string {
	r := s.report
	var b strings.Builder

	b.WriteString(theme.Title.Render("Market insights: "+r.Industry) + "\n")
	freshness := fmt.Sprintf("updated %s, next refresh %s",
		r.LastUpdated.Local().Format("2006-01-02"),
		r.NextUpdate.Local().Format("2006-01-02"))
	if r.Stale {
		freshness += "  (stale: refresh failed, showing cached data)"
	}
	b.WriteString(theme.Hint.Render(freshness) + "\n\n")

	b.WriteString(theme.Body.Bold(true).Render("Outlook") + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"  market: %s   demand: %s   growth: %.1f%%\n\n",
		r.Insight.MarketOutlook, r.Insight.DemandLevel, r.Insight.GrowthRate)))

	b.WriteString(theme.Body.Bold(true).Render("Salary ranges") + "\n")
	for _, sr := range r.Insight.SalaryRanges {
		b.WriteString(theme.Body.Render(fmt.Sprintf(
			"  %-28s $%s - $%s (median $%s) %s\n",
			sr.Role, thousands(sr.Min), thousands(sr.Max), thousands(sr.Median), sr.Location)))
	}
	b.WriteString("\n")

	b.WriteString(theme.Body.Bold(true).Render("Top skills") + "\n")
	b.WriteString(theme.Body.Render("  "+strings.Join(r.Insight.TopSkills, ", ")) + "\n\n")

	b.WriteString(theme.Body.Bold(true).Render("Key trends") + "\n")
	for _, tr := range r.Insight.KeyTrends {
		b.WriteString(theme.Body.Render("  - "+tr) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Body.Bold(true).Render("Recommended skills") + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).
		Render("  "+strings.Join(r.Insight.RecommendedSkills, ", ")) + "\n")

	return b.String()
}

func thousands(v float64) string {
	n := int64(v)
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d,%03d", n/1000, n%1000)
}
