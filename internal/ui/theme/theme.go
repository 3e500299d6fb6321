// Package theme holds the shared color palette and text styles. Every
// screen pulls from here so the app reads as one surface instead of a
// pile of widgets.
package theme

import "charm.land/lipgloss/v2"

// Palette. Tuned for dark terminals; the dim slate carries most of the
// secondary text so the accent colors stay rare.
var (
	Primary   = lipgloss.Color("#2DD4BF") // teal
	Secondary = lipgloss.Color("#818CF8") // indigo
	Accent    = lipgloss.Color("#FBBF24") // amber
	Success   = lipgloss.Color("#4ADE80") // green
	Error     = lipgloss.Color("#F87171") // red
	Text      = lipgloss.Color("#E2E8F0") // off-white
	TextDim   = lipgloss.Color("#64748B") // slate
	BgCard    = lipgloss.Color("#1E293B") // dark slate
	Border    = lipgloss.Color("#334155") // slate border
)

// Text styles.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Answer feedback styles.
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
