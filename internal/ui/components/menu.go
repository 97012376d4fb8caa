package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sidverma/skillgap/internal/ui/theme"
)

// Menu is a vertical single-select menu over string choices.
type Menu struct {
	Items    []string
	Selected int
	Chosen   bool
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []string) Menu {
	return Menu{Items: items}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			m.Chosen = true
		}
	}

	return m, nil
}

// Value returns the currently selected item.
func (m Menu) Value() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected]
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		if i == m.Selected {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+item) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+item) + "\n"
		}
	}
	return s
}
