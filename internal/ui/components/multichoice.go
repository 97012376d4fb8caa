package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sidverma/skillgap/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector over labeled options.
type MultiChoice struct {
	Prompt      string
	FocusArea   string
	Labels      []string
	Options     map[string]string
	Selected    int
	Submitted   bool
	ChosenLabel string
}

// NewMultiChoice creates a multiple-choice component. Labels give the
// display order; options maps each label to its text.
func NewMultiChoice(prompt, focusArea string, labels []string, options map[string]string) MultiChoice {
	return MultiChoice{
		Prompt:    prompt,
		FocusArea: focusArea,
		Labels:    labels,
		Options:   options,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Labels)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenLabel = m.Labels[m.Selected]
	default:
		// Label shortcut keys submit directly.
		for i, label := range m.Labels {
			if key == label {
				m.Selected = i
				m.Submitted = true
				m.ChosenLabel = label
				break
			}
		}
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Prompt) + "\n"

	if m.FocusArea != "" {
		s += theme.Hint.Render("Focus Area: "+m.FocusArea) + "\n"
	}
	s += "\n"

	for i, label := range m.Labels {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, strings.ToUpper(label), m.Options[label])

		if i == m.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
