package assessment

import (
	"context"
	"testing"

	"github.com/sidverma/skillgap/internal/catalog"
	"github.com/sidverma/skillgap/internal/llm"
	"github.com/sidverma/skillgap/internal/questiongen"
)

func validInfo() StudentInfo {
	return StudentInfo{Name: "Asha Rao", Email: "asha@example.edu", Department: "CSE", Year: "3rd Year"}
}

// offlineGenerator serves the built-in placeholder sets, where "a"'s
// text is always the correct option pre-shuffle.
func offlineGenerator() questiongen.Generator {
	return questiongen.New(llm.NewMockProvider(), questiongen.DefaultConfig())
}

func TestSession_StartsAtStudentInfo(t *testing.T) {
	s := NewSession()
	if s.Phase != PhaseStudentInfo {
		t.Errorf("new session phase = %s, want %s", s.Phase, PhaseStudentInfo)
	}
	if len(s.Categories) != catalog.Count() {
		t.Errorf("expected %d categories, got %d", catalog.Count(), len(s.Categories))
	}
}

func TestSubmitStudentInfo_InvalidKeepsPhase(t *testing.T) {
	s := NewSession()
	if err := s.SubmitStudentInfo(StudentInfo{Name: "Only Name"}); err == nil {
		t.Fatal("expected validation error")
	}
	if s.Phase != PhaseStudentInfo {
		t.Errorf("failed submit changed phase to %s", s.Phase)
	}
}

func TestSubmitStudentInfo_Advances(t *testing.T) {
	s := NewSession()
	if err := s.SubmitStudentInfo(validInfo()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Phase != PhaseAssessing {
		t.Errorf("phase = %s, want %s", s.Phase, PhaseAssessing)
	}
	if err := s.SubmitStudentInfo(validInfo()); err == nil {
		t.Error("second submit should be rejected")
	}
}

func TestEnsureQuestions_GeneratesOnce(t *testing.T) {
	s := NewSessionFor([]catalog.Category{catalog.SoftSkills})
	if err := s.SubmitStudentInfo(validInfo()); err != nil {
		t.Fatal(err)
	}

	gen := offlineGenerator()
	if err := s.EnsureQuestions(context.Background(), gen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, ok := s.CurrentQuestion()
	if !ok {
		t.Fatal("no current question after EnsureQuestions")
	}

	// A second call must not regenerate (and so not reshuffle).
	if err := s.EnsureQuestions(context.Background(), gen); err != nil {
		t.Fatal(err)
	}
	second, _ := s.CurrentQuestion()
	if first.Correct != second.Correct || first.Options["a"] != second.Options["a"] {
		t.Error("EnsureQuestions regenerated a cached set")
	}

	// Key was recorded at generation time.
	if _, ok := s.Key.Lookup(catalog.SoftSkills, 0); !ok {
		t.Error("answer key not recorded at generation time")
	}
}

func TestRecordAnswer_AdvancesThroughCategories(t *testing.T) {
	cats := []catalog.Category{catalog.CoreEmployability, catalog.SoftSkills}
	s := NewSessionFor(cats)
	if err := s.SubmitStudentInfo(validInfo()); err != nil {
		t.Fatal(err)
	}

	gen := offlineGenerator()
	for ci := range cats {
		if err := s.EnsureQuestions(context.Background(), gen); err != nil {
			t.Fatal(err)
		}
		for qi := range questiongen.QuestionsPerCategory {
			if s.CategoryIndex != ci || s.QuestionIndex != qi {
				t.Fatalf("position = (%d,%d), want (%d,%d)", s.CategoryIndex, s.QuestionIndex, ci, qi)
			}
			q, ok := s.CurrentQuestion()
			if !ok {
				t.Fatalf("no question at (%d,%d)", ci, qi)
			}
			if err := s.RecordAnswer(q.Correct); err != nil {
				t.Fatalf("record answer: %v", err)
			}
		}
	}

	if s.Phase != PhaseReporting {
		t.Errorf("phase after last answer = %s, want %s", s.Phase, PhaseReporting)
	}
	if s.Progress() != 1 {
		t.Errorf("progress = %v, want 1", s.Progress())
	}

	scores := s.Scores()
	overall, err := Overall(scores)
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if overall != 100 {
		t.Errorf("all-correct run scored %v, want 100", overall)
	}
}

func TestRecordAnswer_RequiresGeneratedSet(t *testing.T) {
	s := NewSessionFor([]catalog.Category{catalog.AILiteracy})
	if err := s.SubmitStudentInfo(validInfo()); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordAnswer("a"); err == nil {
		t.Error("expected error before questions are generated")
	}
}

func TestRecordAnswer_WrongAnswersScoreZero(t *testing.T) {
	s := NewSessionFor([]catalog.Category{catalog.Entrepreneurial})
	if err := s.SubmitStudentInfo(validInfo()); err != nil {
		t.Fatal(err)
	}
	if err := s.EnsureQuestions(context.Background(), offlineGenerator()); err != nil {
		t.Fatal(err)
	}

	for range questiongen.QuestionsPerCategory {
		q, _ := s.CurrentQuestion()
		// Pick a label that is not correct.
		wrong := "a"
		if q.Correct == "a" {
			wrong = "b"
		}
		if err := s.RecordAnswer(wrong); err != nil {
			t.Fatal(err)
		}
	}

	scores := s.Scores()
	if got := scores[catalog.Entrepreneurial]; got != 0 {
		t.Errorf("score = %v, want 0", got)
	}
}

func TestProgress_Midway(t *testing.T) {
	s := NewSessionFor([]catalog.Category{catalog.CoreEmployability, catalog.SoftSkills})
	if err := s.SubmitStudentInfo(validInfo()); err != nil {
		t.Fatal(err)
	}
	if err := s.EnsureQuestions(context.Background(), offlineGenerator()); err != nil {
		t.Fatal(err)
	}

	for range questiongen.QuestionsPerCategory {
		q, _ := s.CurrentQuestion()
		if err := s.RecordAnswer(q.Correct); err != nil {
			t.Fatal(err)
		}
	}

	if got := s.Progress(); got != 0.5 {
		t.Errorf("progress after first category = %v, want 0.5", got)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseStudentInfo.String() != "student-info" {
		t.Errorf("unexpected: %s", PhaseStudentInfo)
	}
	if Phase(42).String() == "" {
		t.Error("unknown phase must still render")
	}
}
