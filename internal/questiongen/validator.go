package questiongen

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports why a generated question was rejected.
// Position identifies the question within its generation batch.
type ValidationError struct {
	Position int
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %d: %s", e.Position+1, e.Message)
}

// Validate checks a raw question against the acceptance rules: the
// question, correct, and explanation fields must be present, options
// must have exactly the labels "a".."d", and correct must be one of
// them. Explanation is required for acceptance even though the flow
// does not display it; a question the model cannot justify is suspect.
//
// Validate runs before Shuffle, which assumes a well-formed input.
func Validate(raw RawQuestion, pos int) *ValidationError {
	if strings.TrimSpace(raw.Question) == "" {
		return &ValidationError{Position: pos, Message: "missing question text"}
	}
	if strings.TrimSpace(raw.Explanation) == "" {
		return &ValidationError{Position: pos, Message: "missing explanation"}
	}
	if len(raw.Options) != OptionsPerQuestion {
		return &ValidationError{
			Position: pos,
			Message:  fmt.Sprintf("expected %d options, got %d", OptionsPerQuestion, len(raw.Options)),
		}
	}

	want := labels(OptionsPerQuestion)
	got := make([]string, 0, len(raw.Options))
	for k := range raw.Options {
		got = append(got, k)
	}
	sort.Strings(got)
	for i, label := range want {
		if got[i] != label {
			return &ValidationError{
				Position: pos,
				Message: fmt.Sprintf("option labels must be {%s}, got {%s}",
					strings.Join(want, ","), strings.Join(got, ",")),
			}
		}
	}

	if _, ok := raw.Options[raw.Correct]; !ok {
		return &ValidationError{
			Position: pos,
			Message:  fmt.Sprintf("correct label %q is not an option", raw.Correct),
		}
	}

	return nil
}
