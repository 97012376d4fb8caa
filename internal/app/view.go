package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sidverma/skillgap/internal/assessment"
	"github.com/sidverma/skillgap/internal/catalog"
	"github.com/sidverma/skillgap/internal/questiongen"
	"github.com/sidverma/skillgap/internal/ui/components"
	"github.com/sidverma/skillgap/internal/ui/layout"
	"github.com/sidverma/skillgap/internal/ui/theme"
)

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.title(), m.progressLabel(), m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	switch {
	case m.errMsg != "":
		content = renderError(m.width, m.errMsg)
	case m.session.Phase == assessment.PhaseStudentInfo:
		content = m.renderStudentInfo()
	case m.session.Phase == assessment.PhaseAssessing:
		content = m.renderAssessing()
	default:
		content = m.renderReport(contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) title() string {
	switch m.session.Phase {
	case assessment.PhaseStudentInfo:
		return "Student Information"
	case assessment.PhaseAssessing:
		if cat, err := m.session.CurrentCategory(); err == nil {
			return string(cat)
		}
		return "Assessment"
	default:
		return "Skill Gap Report"
	}
}

func (m AppModel) progressLabel() string {
	if m.session.Phase == assessment.PhaseStudentInfo {
		return ""
	}
	return fmt.Sprintf("%d%%", int(m.session.Progress()*100))
}

func (m AppModel) keyHints() []layout.KeyHint {
	switch m.session.Phase {
	case assessment.PhaseStudentInfo:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case assessment.PhaseAssessing:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "A-D", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "S", Description: "Save report"},
			{Key: "Q", Description: "Quit"},
		}
	}
}

// renderStudentInfo renders the identity form.
func (m AppModel) renderStudentInfo() string {
	var b strings.Builder
	b.WriteString("\n")

	labels := []string{"Full Name", "Email", "Department"}
	for i, label := range labels {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if m.focused == i {
			style = theme.Selected
		}
		b.WriteString("  " + style.Render(label) + "\n")
		b.WriteString("  " + m.inputs[i].View() + "\n\n")
	}

	yearStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if m.focused == fieldYear {
		yearStyle = theme.Selected
	}
	b.WriteString("  " + yearStyle.Render("Year") + "\n")
	b.WriteString(m.yearMenu.View())

	if m.formErr != "" {
		b.WriteString("\n  " + theme.Incorrect.Render(m.formErr) + "\n")
	}

	b.WriteString("\n  " + theme.Hint.Render("Press Enter on the year to start the assessment."))

	return b.String()
}

// renderAssessing renders the current question or the generation
// spinner text.
func (m AppModel) renderAssessing() string {
	if m.loading {
		cat, _ := m.session.CurrentCategory()
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n\n  Generating questions for %s...", cat))
	}

	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d of %d", m.session.QuestionIndex+1, questiongen.QuestionsPerCategory))
	b.WriteString(counter + "\n")

	bar := components.NewProgressBar("", m.session.Progress(), true, m.width-8)
	b.WriteString("  " + bar.View() + "\n\n")

	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(m.choice.View()))

	return b.String()
}

// renderReport renders the scores and the narrative analysis.
func (m AppModel) renderReport(height int) string {
	var b strings.Builder
	b.WriteString("\n")

	overallLine := fmt.Sprintf("  Overall Score: %.1f%%  (%s)", m.overall, catalog.Grade(m.overall))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(overallLine))
	b.WriteString("\n\n")

	for _, cat := range catalog.All() {
		score, ok := m.scores[cat]
		if !ok {
			continue
		}
		grade := catalog.Grade(score)
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-55s", cat),
			Percent:     score / 100,
			ShowPercent: true,
			Width:       m.width - 20,
			Color:       theme.GradeColor(grade),
		}
		b.WriteString("  " + bar.View() + "\n")
	}
	b.WriteString("\n")

	if !m.reportReady {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Generating detailed analysis..."))
		return b.String()
	}

	b.WriteString(m.renderNarrative(height))

	if m.savedNote != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Success).Render(m.savedNote))
	}

	return b.String()
}

// renderNarrative shows the scrollable window of the analysis text.
func (m AppModel) renderNarrative(height int) string {
	wrapped := lipgloss.NewStyle().
		Width(min(m.width-8, 100)).
		Foreground(theme.Text).
		Render(m.narrative)

	lines := strings.Split(wrapped, "\n")

	// Reserve room for the score bars above the narrative.
	visible := height - len(m.scores) - 6
	if visible < 3 {
		visible = 3
	}

	offset := m.scrollOffset
	if offset > len(lines)-visible {
		offset = len(lines) - visible
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + visible
	if end > len(lines) {
		end = len(lines)
	}

	window := strings.Join(lines[offset:end], "\n")
	return lipgloss.NewStyle().PaddingLeft(4).Render(window)
}

// renderError renders a fatal error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to exit.", errMsg))
}
