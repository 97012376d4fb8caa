// Package assessment owns the state of one assessment run: the flow
// phase, the cached question sets, the answer key, the ledger of
// selected answers, and the scoring derived from them. One Session per
// user interaction context; nothing here is shared between sessions.
package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sidverma/skillgap/internal/catalog"
	"github.com/sidverma/skillgap/internal/questiongen"
)

// Phase is the assessment flow state.
type Phase int

const (
	// PhaseStudentInfo collects the student identity fields.
	PhaseStudentInfo Phase = iota

	// PhaseAssessing serves questions category by category.
	PhaseAssessing

	// PhaseReporting is terminal: scores are final and the report can
	// be produced. A new assessment needs a fresh session.
	PhaseReporting
)

func (p Phase) String() string {
	switch p {
	case PhaseStudentInfo:
		return "student-info"
	case PhaseAssessing:
		return "assessing"
	case PhaseReporting:
		return "reporting"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Session aggregates the state of a single assessment run.
type Session struct {
	// ID is a unique identifier for this run.
	ID string

	// Phase is the current flow state.
	Phase Phase

	// Student holds the submitted identity fields (set on the
	// StudentInfo → Assessing transition).
	Student StudentInfo

	// Categories is the assessment sequence, fixed at creation.
	Categories []catalog.Category

	// CategoryIndex and QuestionIndex locate the current question
	// while Phase == PhaseAssessing.
	CategoryIndex int
	QuestionIndex int

	// Sets caches each category's generated question set. A set is
	// generated at most once per session and never regenerated.
	Sets map[catalog.Category][]questiongen.Question

	// Key is this session's answer key, written at generation time.
	Key Key

	// Ledger records the selected answers.
	Ledger Ledger

	// StartedAt is when the session was created.
	StartedAt time.Time
}

// NewSession creates a session covering the full catalog.
func NewSession() *Session {
	return NewSessionFor(catalog.All())
}

// NewSessionFor creates a session over an explicit category sequence.
func NewSessionFor(categories []catalog.Category) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Phase:      PhaseStudentInfo,
		Categories: categories,
		Sets:       make(map[catalog.Category][]questiongen.Question),
		Key:        NewKey(),
		Ledger:     NewLedger(),
		StartedAt:  time.Now(),
	}
}

// SubmitStudentInfo validates the identity fields and advances to
// PhaseAssessing. On a validation failure the session is unchanged and
// the caller re-prompts.
func (s *Session) SubmitStudentInfo(info StudentInfo) error {
	if s.Phase != PhaseStudentInfo {
		return fmt.Errorf("student info already submitted (phase %s)", s.Phase)
	}
	if err := info.Validate(); err != nil {
		return err
	}
	s.Student = info
	s.Phase = PhaseAssessing
	return nil
}

// CurrentCategory returns the category being assessed.
func (s *Session) CurrentCategory() (catalog.Category, error) {
	if s.Phase != PhaseAssessing {
		return "", fmt.Errorf("no current category in phase %s", s.Phase)
	}
	return s.Categories[s.CategoryIndex], nil
}

// EnsureQuestions generates the current category's question set if it
// hasn't been generated yet, recording the answer key as a side effect.
// Subsequent calls for the same category are no-ops; the cached set is
// authoritative for the whole session.
func (s *Session) EnsureQuestions(ctx context.Context, gen questiongen.Generator) error {
	cat, err := s.CurrentCategory()
	if err != nil {
		return err
	}
	if _, ok := s.Sets[cat]; ok {
		return nil
	}

	questions, err := gen.Generate(ctx, cat)
	if err != nil {
		return fmt.Errorf("generate questions for %q: %w", cat, err)
	}
	s.Sets[cat] = questions
	s.Key.Record(cat, questions)
	return nil
}

// CurrentQuestion returns the question at the session's position. The
// second return is false when the set isn't generated yet or the phase
// is wrong.
func (s *Session) CurrentQuestion() (questiongen.Question, bool) {
	cat, err := s.CurrentCategory()
	if err != nil {
		return questiongen.Question{}, false
	}
	set, ok := s.Sets[cat]
	if !ok || s.QuestionIndex >= len(set) {
		return questiongen.Question{}, false
	}
	return set[s.QuestionIndex], true
}

// RecordAnswer appends the selected label to the ledger and advances
// the position: through the category's questions, then to the next
// category, and finally into PhaseReporting after the last question of
// the last category. The flow is strictly sequential: no skipping, no
// going back.
func (s *Session) RecordAnswer(label string) error {
	cat, err := s.CurrentCategory()
	if err != nil {
		return err
	}
	if _, ok := s.Sets[cat]; !ok {
		return fmt.Errorf("questions for %q not generated yet", cat)
	}

	s.Ledger.Record(cat, label)

	if s.QuestionIndex < questiongen.QuestionsPerCategory-1 {
		s.QuestionIndex++
		return nil
	}
	s.QuestionIndex = 0
	s.CategoryIndex++
	if s.CategoryIndex >= len(s.Categories) {
		s.Phase = PhaseReporting
	}
	return nil
}

// Progress reports overall completion in [0,1], counting answered
// questions against the configured total.
func (s *Session) Progress() float64 {
	total := len(s.Categories) * questiongen.QuestionsPerCategory
	if total == 0 {
		return 0
	}
	if s.Phase == PhaseReporting {
		return 1
	}
	answered := s.CategoryIndex*questiongen.QuestionsPerCategory + s.QuestionIndex
	return float64(answered) / float64(total)
}

// Scores derives the per-category score map from the ledger and key.
func (s *Session) Scores() map[catalog.Category]float64 {
	return Scores(s.Ledger, s.Key)
}
