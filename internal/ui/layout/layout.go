// Package layout renders the chrome shared by every screen: the header
// bar, the key-hint footer, and the frame that stacks them around the
// screen body.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// Minimum terminal size the layout can render sensibly.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// bar wraps one line of content in the bordered bar style used by both
// the header and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// pad returns at least one space, growing to n.
func pad(n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}

// RenderHeader draws the header bar: app name on the left, the current
// screen title centered, and the user's industry (or "no profile") on
// the right.
func RenderHeader(title, industry string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Prepdeck")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	rightText := industry
	if rightText == "" {
		rightText = "no profile"
	}
	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(rightText)

	// Center the title against the full bar, then give the right text
	// whatever room remains. The border eats 2 columns each side.
	inner := width - 4
	if inner < 0 {
		inner = 0
	}
	leftGap := (inner-lipgloss.Width(center))/2 - lipgloss.Width(left)
	rightGap := inner - lipgloss.Width(left) - max(leftGap, 1) -
		lipgloss.Width(center) - lipgloss.Width(right)

	return bar(left+pad(leftGap)+center+pad(rightGap)+right, width)
}

// RenderFooter draws the footer bar listing the active key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, body, and footer to fill the terminal,
// stretching the body to whatever height the bars leave over.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
