// Package questiongen turns a skill category into a validated, shuffled
// set of multiple-choice questions, using an LLM provider with a
// deterministic fallback when the provider is unavailable or returns
// unusable output.
package questiongen

// QuestionsPerCategory is the fixed size of every generated set.
const QuestionsPerCategory = 5

// OptionsPerQuestion is the fixed option count per question.
const OptionsPerQuestion = 4

// canonicalLabels is the label alphabet. Options are always relabeled
// onto its prefix, so a 4-option question uses "a".."d".
const canonicalLabels = "abcdefghijklmnopqrstuvwxyz"

// Question is a single multiple-choice question ready for display.
type Question struct {
	// Prompt is the scenario text shown to the student.
	Prompt string

	// FocusArea is the category sub-topic this question targets.
	// May be empty; it is informational only.
	FocusArea string

	// Options maps a label ("a".."d") to option text. After shuffling,
	// label order carries no meaning.
	Options map[string]string

	// Correct is the label of the right option. Always a key of Options.
	Correct string

	// Explanation says why the correct option is right.
	Explanation string
}

// Labels returns the question's option labels in display order.
func (q Question) Labels() []string {
	out := make([]string, 0, len(q.Options))
	for _, r := range canonicalLabels {
		l := string(r)
		if _, ok := q.Options[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// RawQuestion is the wire shape produced by the content-generation
// service, before validation and shuffling.
type RawQuestion struct {
	Question    string            `json:"question"`
	FocusArea   string            `json:"focus_area,omitempty"`
	Options     map[string]string `json:"options"`
	Correct     string            `json:"correct"`
	Explanation string            `json:"explanation"`
}

// labels returns the first n canonical option labels.
func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(canonicalLabels[i])
	}
	return out
}
