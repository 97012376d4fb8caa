package assessment

import (
	"github.com/sidverma/skillgap/internal/catalog"
	"github.com/sidverma/skillgap/internal/questiongen"
)

// Ledger is the append-only record of selected answer labels, one
// ordered sequence per category. It is the source of truth for scoring.
// Not safe for concurrent use; a session owns exactly one ledger and
// touches it from a single goroutine.
type Ledger map[catalog.Category][]string

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return make(Ledger)
}

// Record appends the selected label for the next question of cat.
// Entries are never edited or reordered.
func (l Ledger) Record(cat catalog.Category, label string) {
	l[cat] = append(l[cat], label)
}

// Answers returns the recorded labels for cat in answer order, empty if
// none were recorded.
func (l Ledger) Answers(cat catalog.Category) []string {
	return l[cat]
}

// Key is a session's answer key: the post-shuffle correct label for
// every generated question, fixed at generation time. Each session owns
// its own key; nothing is shared across sessions.
type Key map[catalog.Category][]string

// NewKey returns an empty answer key.
func NewKey() Key {
	return make(Key)
}

// Record stores the correct labels for a freshly generated set,
// replacing any previous entries for the category. In normal operation
// a category is generated once per session, so entries never change
// after being written.
func (k Key) Record(cat catalog.Category, questions []questiongen.Question) {
	labels := make([]string, len(questions))
	for i, q := range questions {
		labels[i] = q.Correct
	}
	k[cat] = labels
}

// Lookup returns the correct label for (cat, index).
func (k Key) Lookup(cat catalog.Category, index int) (string, bool) {
	labels, ok := k[cat]
	if !ok || index < 0 || index >= len(labels) {
		return "", false
	}
	return labels[index], true
}
