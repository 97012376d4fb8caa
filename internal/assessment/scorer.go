package assessment

import (
	"errors"

	"github.com/sidverma/skillgap/internal/catalog"
)

// ErrNoScores is returned when an overall score is requested but no
// category has any recorded answers. Callers report "no data" instead
// of dividing by zero.
var ErrNoScores = errors.New("no categories have recorded answers")

// Scores computes the per-category percentage scores from the ledger
// against the answer key. A category's score is 100 * correct / answered.
// Categories without recorded answers are absent from the result, not
// zero-scored: the overall score averages only categories the student
// actually reached.
func Scores(ledger Ledger, key Key) map[catalog.Category]float64 {
	scores := make(map[catalog.Category]float64)
	for _, cat := range catalog.All() {
		answers := ledger.Answers(cat)
		if len(answers) == 0 {
			continue
		}
		correct := 0
		for i, label := range answers {
			if want, ok := key.Lookup(cat, i); ok && label == want {
				correct++
			}
		}
		scores[cat] = 100 * float64(correct) / float64(len(answers))
	}
	return scores
}

// Overall returns the arithmetic mean of the category scores. A
// partially completed assessment averages only the answered categories.
// An empty score map yields ErrNoScores.
func Overall(scores map[catalog.Category]float64) (float64, error) {
	if len(scores) == 0 {
		return 0, ErrNoScores
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)), nil
}
