package questiongen

import (
	"math/rand/v2"
	"sort"
	"testing"
)

func sampleQuestion() Question {
	return Question{
		Prompt:    "A teammate misses a deadline. What do you do first?",
		FocusArea: "Teamwork",
		Options: map[string]string{
			"a": "Ask them what happened",
			"b": "Report them to the manager",
			"c": "Ignore it",
			"d": "Take over their work silently",
		},
		Correct:     "a",
		Explanation: "Understanding the cause comes before escalation.",
	}
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestShuffle_PreservesOptionTexts(t *testing.T) {
	q := sampleQuestion()
	shuffled := Shuffle(q, testRand(1))

	if len(shuffled.Options) != len(q.Options) {
		t.Fatalf("option count changed: %d -> %d", len(q.Options), len(shuffled.Options))
	}

	var before, after []string
	for _, v := range q.Options {
		before = append(before, v)
	}
	for _, v := range shuffled.Options {
		after = append(after, v)
	}
	sort.Strings(before)
	sort.Strings(after)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("option texts changed: %v vs %v", before, after)
			break
		}
	}
}

func TestShuffle_CorrectFollowsText(t *testing.T) {
	q := sampleQuestion()
	correctText := q.Options[q.Correct]

	for seed := uint64(1); seed <= 50; seed++ {
		shuffled := Shuffle(q, testRand(seed))
		if shuffled.Options[shuffled.Correct] != correctText {
			t.Fatalf("seed %d: correct label %q holds %q, want %q",
				seed, shuffled.Correct, shuffled.Options[shuffled.Correct], correctText)
		}
	}
}

func TestShuffle_UsesCanonicalLabels(t *testing.T) {
	shuffled := Shuffle(sampleQuestion(), testRand(7))

	for _, label := range []string{"a", "b", "c", "d"} {
		if _, ok := shuffled.Options[label]; !ok {
			t.Errorf("missing label %q after shuffle", label)
		}
	}
}

func TestShuffle_MovesOptionsAcrossSeeds(t *testing.T) {
	q := sampleQuestion()

	moved := false
	for seed := uint64(1); seed <= 20; seed++ {
		shuffled := Shuffle(q, testRand(seed))
		if shuffled.Options["a"] != q.Options["a"] {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("20 shuffles never moved option a; shuffle looks like a no-op")
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	q := sampleQuestion()
	orig := q.Options["a"]

	Shuffle(q, testRand(3))

	if q.Options["a"] != orig || q.Correct != "a" {
		t.Error("shuffle mutated its input")
	}
}

func TestLabels_Ordering(t *testing.T) {
	q := sampleQuestion()
	got := q.Labels()
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("got %d labels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, got[i], want[i])
		}
	}
}
