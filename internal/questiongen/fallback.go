package questiongen

import (
	"fmt"

	"github.com/sidverma/skillgap/internal/catalog"
)

// fallbackExplanation marks placeholder questions in exports.
const fallbackExplanation = "This is a placeholder question shown because question generation was unavailable."

// fallbackSet synthesizes the deterministic placeholder batch used when
// the content-generation service fails. Pre-shuffle, "a" is always
// correct; the caller shuffles like any other batch. This path cannot
// fail.
func fallbackSet(cat catalog.Category, d catalog.Details) []Question {
	focus := ""
	if len(d.FocusAreas) > 0 {
		focus = d.FocusAreas[0]
	}

	out := make([]Question, QuestionsPerCategory)
	for i := range out {
		out[i] = Question{
			Prompt:    fmt.Sprintf("Sample question %d for %s", i+1, cat),
			FocusArea: focus,
			Options: map[string]string{
				"a": "Option A",
				"b": "Option B",
				"c": "Option C",
				"d": "Option D",
			},
			Correct:     "a",
			Explanation: fallbackExplanation,
		}
	}
	return out
}
