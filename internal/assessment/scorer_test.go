package assessment

import (
	"errors"
	"math"
	"testing"

	"github.com/sidverma/skillgap/internal/catalog"
	"github.com/sidverma/skillgap/internal/questiongen"
)

func keyFor(cat catalog.Category, correct ...string) Key {
	questions := make([]questiongen.Question, len(correct))
	for i, label := range correct {
		questions[i] = questiongen.Question{Correct: label}
	}
	k := NewKey()
	k.Record(cat, questions)
	return k
}

func TestScores_AllCorrect(t *testing.T) {
	key := keyFor(catalog.SoftSkills, "a", "b", "c", "d", "a")
	ledger := NewLedger()
	for _, label := range []string{"a", "b", "c", "d", "a"} {
		ledger.Record(catalog.SoftSkills, label)
	}

	scores := Scores(ledger, key)
	if got := scores[catalog.SoftSkills]; got != 100 {
		t.Errorf("score = %v, want 100", got)
	}
}

func TestScores_Half(t *testing.T) {
	key := keyFor(catalog.CoreEmployability, "a", "c")
	ledger := NewLedger()
	ledger.Record(catalog.CoreEmployability, "a")
	ledger.Record(catalog.CoreEmployability, "b")

	scores := Scores(ledger, key)
	if got := scores[catalog.CoreEmployability]; got != 50 {
		t.Errorf("score = %v, want 50", got)
	}
}

func TestScores_UnansweredCategoryAbsent(t *testing.T) {
	key := keyFor(catalog.AILiteracy, "a", "a", "a", "a", "a")
	ledger := NewLedger()
	ledger.Record(catalog.AILiteracy, "a")

	scores := Scores(ledger, key)
	if _, ok := scores[catalog.SoftSkills]; ok {
		t.Error("unanswered category must be absent, not zero-scored")
	}
	if got := scores[catalog.AILiteracy]; got != 100 {
		t.Errorf("answered category score = %v, want 100", got)
	}
}

func TestScores_AnswerWithoutKeyCountsWrong(t *testing.T) {
	ledger := NewLedger()
	ledger.Record(catalog.Professional, "a")

	scores := Scores(ledger, NewKey())
	if got := scores[catalog.Professional]; got != 0 {
		t.Errorf("score without key = %v, want 0", got)
	}
}

func TestOverall_Mean(t *testing.T) {
	scores := map[catalog.Category]float64{
		catalog.CoreEmployability: 80,
		catalog.SoftSkills:        60,
	}
	overall, err := Overall(scores)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overall != 70 {
		t.Errorf("overall = %v, want 70", overall)
	}
}

func TestOverall_SingleCategory(t *testing.T) {
	scores := map[catalog.Category]float64{catalog.JobApplication: 40}
	overall, err := Overall(scores)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(overall-40) > 1e-9 {
		t.Errorf("overall = %v, want 40", overall)
	}
}

func TestOverall_Empty(t *testing.T) {
	_, err := Overall(map[catalog.Category]float64{})
	if !errors.Is(err, ErrNoScores) {
		t.Errorf("expected ErrNoScores, got %v", err)
	}
}

func TestStudentInfo_Validate(t *testing.T) {
	info := StudentInfo{Name: "Asha Rao", Email: "asha@example.edu", Department: "CSE", Year: "3rd Year"}
	if err := info.Validate(); err != nil {
		t.Fatalf("complete info rejected: %v", err)
	}

	info.Email = "  "
	info.Year = ""
	err := info.Validate()
	if err == nil {
		t.Fatal("expected error for missing fields")
	}
}
