// Package app is the Bubble Tea front end for the assessment flow:
// student info form, category-by-category questions, and the final
// report screen.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/sidverma/skillgap/internal/assessment"
	"github.com/sidverma/skillgap/internal/catalog"
	"github.com/sidverma/skillgap/internal/questiongen"
	"github.com/sidverma/skillgap/internal/report"
	"github.com/sidverma/skillgap/internal/ui/components"
)

// yearOptions are the choices offered for the year of study.
var yearOptions = []string{"1st Year", "2nd Year", "3rd Year", "4th Year"}

// Form field indexes for the student info screen.
const (
	fieldName = iota
	fieldEmail
	fieldDepartment
	fieldYear
	fieldCount
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	session   *assessment.Session
	generator questiongen.Generator
	reporter  *report.Service

	width  int
	height int

	// Student info form.
	inputs   [3]components.TextInput
	yearMenu components.Menu
	focused  int
	formErr  string

	// Question flow.
	loading bool
	choice  components.MultiChoice

	// Report screen.
	scores       map[catalog.Category]float64
	overall      float64
	narrative    string
	reportReady  bool
	savedNote    string
	scrollOffset int

	errMsg string
}

// New creates the root model with injected services.
func New(generator questiongen.Generator, reporter *report.Service) AppModel {
	m := AppModel{
		session:   assessment.NewSession(),
		generator: generator,
		reporter:  reporter,
		yearMenu:  components.NewMenu(yearOptions),
	}
	m.inputs[fieldName] = components.NewTextInput("Full Name", 60)
	m.inputs[fieldEmail] = components.NewTextInput("Email", 80)
	m.inputs[fieldDepartment] = components.NewTextInput("Department", 60)
	m.inputs[fieldEmail].Blur()
	m.inputs[fieldDepartment].Blur()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.inputs[fieldName].Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case questionsReadyMsg:
		return m.handleQuestionsReady(msg)

	case reportReadyMsg:
		m.narrative = msg.Narrative
		m.reportReady = true
		return m, nil

	case reportSavedMsg:
		if msg.Err != nil {
			m.savedNote = fmt.Sprintf("Save failed: %v", msg.Err)
		} else {
			m.savedNote = fmt.Sprintf("Saved %s and %s", msg.CSVPath, msg.MDPath)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	// Forward other messages (cursor blinks) to the focused input.
	if m.session.Phase == assessment.PhaseStudentInfo && m.focused < fieldYear {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.errMsg != "" {
		return m, tea.Quit
	}

	switch m.session.Phase {
	case assessment.PhaseStudentInfo:
		return m.updateStudentInfo(msg)
	case assessment.PhaseAssessing:
		return m.updateAssessing(msg)
	case assessment.PhaseReporting:
		return m.updateReporting(msg)
	}
	return m, nil
}

// updateStudentInfo drives the identity form: tab cycles fields, enter
// advances, enter on the year field submits.
func (m AppModel) updateStudentInfo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "enter":
		if msg.String() == "enter" && m.focused == fieldYear {
			return m.submitStudentInfo()
		}
		if msg.String() == "shift+tab" {
			m.focused = (m.focused + fieldCount - 1) % fieldCount
		} else {
			m.focused = (m.focused + 1) % fieldCount
		}
		return m, m.refocus()
	}

	if m.focused == fieldYear {
		var cmd tea.Cmd
		m.yearMenu, cmd = m.yearMenu.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// refocus moves textinput focus to the currently selected field.
func (m *AppModel) refocus() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.focused < fieldYear {
		return m.inputs[m.focused].Focus()
	}
	return nil
}

func (m AppModel) submitStudentInfo() (tea.Model, tea.Cmd) {
	info := assessment.StudentInfo{
		Name:       m.inputs[fieldName].Value(),
		Email:      m.inputs[fieldEmail].Value(),
		Department: m.inputs[fieldDepartment].Value(),
		Year:       m.yearMenu.Value(),
	}
	if err := m.session.SubmitStudentInfo(info); err != nil {
		m.formErr = err.Error()
		return m, nil
	}
	m.formErr = ""
	m.loading = true
	return m, m.loadQuestions()
}

// loadQuestions generates the current category's questions off the UI
// goroutine.
func (m AppModel) loadQuestions() tea.Cmd {
	session := m.session
	generator := m.generator
	return func() tea.Msg {
		cat, err := session.CurrentCategory()
		if err != nil {
			return questionsReadyMsg{Err: err}
		}
		if err := session.EnsureQuestions(context.Background(), generator); err != nil {
			return questionsReadyMsg{Category: cat, Err: err}
		}
		return questionsReadyMsg{Category: cat}
	}
}

func (m AppModel) handleQuestionsReady(msg questionsReadyMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	return m.presentQuestion()
}

// presentQuestion builds the choice component for the session's
// current question.
func (m AppModel) presentQuestion() (tea.Model, tea.Cmd) {
	q, ok := m.session.CurrentQuestion()
	if !ok {
		m.errMsg = "no question available"
		return m, nil
	}
	m.choice = components.NewMultiChoice(q.Prompt, q.FocusArea, q.Labels(), q.Options)
	return m, nil
}

func (m AppModel) updateAssessing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	if !m.choice.Submitted {
		return m, cmd
	}

	if err := m.session.RecordAnswer(m.choice.ChosenLabel); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	switch m.session.Phase {
	case assessment.PhaseReporting:
		m.scores = m.session.Scores()
		if overall, err := assessment.Overall(m.scores); err == nil {
			m.overall = overall
		}
		return m, m.generateReport()
	default:
		if _, ok := m.session.CurrentQuestion(); ok {
			return m.presentQuestion()
		}
		// Next category still needs generating.
		m.loading = true
		return m, m.loadQuestions()
	}
}

// generateReport requests the narrative analysis off the UI goroutine.
func (m AppModel) generateReport() tea.Cmd {
	reporter := m.reporter
	student := m.session.Student
	scores := m.scores
	overall := m.overall
	return func() tea.Msg {
		narrative := reporter.Narrative(context.Background(), student, scores, overall)
		return reportReadyMsg{Narrative: narrative}
	}
}

func (m AppModel) updateReporting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "s":
		if m.reportReady {
			return m, m.saveReport()
		}
	case "up", "k":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	case "down", "j":
		m.scrollOffset++
	}
	return m, nil
}

// saveReport writes the CSV and markdown artifacts into the working
// directory.
func (m AppModel) saveReport() tea.Cmd {
	student := m.session.Student
	scores := m.scores
	overall := m.overall
	narrative := m.narrative
	return func() tea.Msg {
		csvData := report.ScoresCSV(scores)
		md := report.Markdown(student, scores, overall, narrative)
		csvPath, mdPath, err := report.WriteFiles(".", csvData, md)
		return reportSavedMsg{CSVPath: csvPath, MDPath: mdPath, Err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(generator questiongen.Generator, reporter *report.Service) error {
	p := tea.NewProgram(New(generator, reporter))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
