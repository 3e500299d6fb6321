// Package screen defines the contract every navigable view implements.
// The router owns a stack of Screens; the app shell draws the header
// and footer around whatever View returns.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// Screen is a single view in the navigation stack.
type Screen interface {
	// Init returns the command to run when the screen is pushed.
	Init() tea.Cmd

	// Update handles a message and returns the replacement screen
	// plus any follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body only; the shell adds header and footer.
	View(width, height int) string

	// Title is shown in the header while the screen is on top.
	Title() string
}

// KeyHintProvider lets a screen publish its own footer key hints.
// Screens that don't implement it get the default set.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
