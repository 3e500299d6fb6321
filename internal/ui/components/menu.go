package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// MenuItem is one entry in a Menu. A Disabled item renders dimmed and
// the cursor skips over it.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical cursor menu driven by up/down and enter.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Init() tea.Cmd { return nil }

// move steps the cursor by delta, skipping disabled items. The cursor
// stays put when no enabled item exists in that direction.
func (m *Menu) move(delta int) {
	for i := m.Selected + delta; i >= 0 && i < len(m.Items); i += delta {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Update handles keyboard navigation and activation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}
	return m, nil
}

var (
	menuItemStyle     = lipgloss.NewStyle().Foreground(theme.Text)
	menuDisabledStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	menuCursorStyle   = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
)

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		style, prefix := menuItemStyle, "    "
		if item.Disabled {
			style = menuDisabledStyle
		}
		if i == m.Selected {
			style, prefix = menuCursorStyle, "  > "
		}
		b.WriteString(style.Render(prefix + item.Label))
		b.WriteByte('\n')
	}
	return b.String()
}
