package questiongen

import "math/rand/v2"

// Shuffle returns a copy of q with the option texts dealt onto the
// canonical labels in uniformly random order, and Correct remapped to
// whichever label now holds the originally correct text. The meaning of
// the question is unchanged; only the lettering moves.
//
// The input must already satisfy the Question invariants (Correct is a
// key of Options); Shuffle does not re-validate.
func Shuffle(q Question, rng *rand.Rand) Question {
	correctText := q.Options[q.Correct]

	texts := make([]string, 0, len(q.Options))
	for _, label := range labels(len(q.Options)) {
		texts = append(texts, q.Options[label])
	}
	rng.Shuffle(len(texts), func(i, j int) {
		texts[i], texts[j] = texts[j], texts[i]
	})

	shuffled := Question{
		Prompt:      q.Prompt,
		FocusArea:   q.FocusArea,
		Options:     make(map[string]string, len(texts)),
		Explanation: q.Explanation,
	}
	for i, text := range texts {
		label := string(canonicalLabels[i])
		shuffled.Options[label] = text
		if shuffled.Correct == "" && text == correctText {
			shuffled.Correct = label
		}
	}

	return shuffled
}
