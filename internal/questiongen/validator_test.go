package questiongen

import (
	"strings"
	"testing"
)

func validRaw() RawQuestion {
	return RawQuestion{
		Question:  "A client emails an urgent complaint. What is your first step?",
		FocusArea: "Communication Skills",
		Options: map[string]string{
			"a": "Acknowledge the complaint promptly",
			"b": "Forward it without reading",
			"c": "Wait for them to call",
			"d": "Delete the email",
		},
		Correct:     "a",
		Explanation: "A prompt acknowledgement keeps the client informed while you investigate.",
	}
}

func TestValidate_Accepts(t *testing.T) {
	if err := Validate(validRaw(), 0); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}
}

func TestValidate_MissingQuestionText(t *testing.T) {
	raw := validRaw()
	raw.Question = "   "
	if err := Validate(raw, 0); err == nil {
		t.Error("expected rejection for blank question text")
	}
}

func TestValidate_MissingExplanation(t *testing.T) {
	raw := validRaw()
	raw.Explanation = ""
	if err := Validate(raw, 0); err == nil {
		t.Error("expected rejection for missing explanation")
	}
}

func TestValidate_WrongOptionCount(t *testing.T) {
	raw := validRaw()
	delete(raw.Options, "d")
	if err := Validate(raw, 0); err == nil {
		t.Error("expected rejection for 3 options")
	}

	raw = validRaw()
	raw.Options["e"] = "Extra option"
	if err := Validate(raw, 0); err == nil {
		t.Error("expected rejection for 5 options")
	}
}

func TestValidate_NonCanonicalLabels(t *testing.T) {
	raw := validRaw()
	delete(raw.Options, "d")
	raw.Options["e"] = "Mislabeled option"
	if err := Validate(raw, 0); err == nil {
		t.Error("expected rejection for labels {a,b,c,e}")
	}
}

func TestValidate_CorrectNotAnOption(t *testing.T) {
	raw := validRaw()
	raw.Correct = "e"
	if err := Validate(raw, 0); err == nil {
		t.Error("expected rejection when correct label is not an option")
	}
}

func TestValidationError_PositionIsOneBased(t *testing.T) {
	raw := validRaw()
	raw.Question = ""
	err := Validate(raw, 2)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "question 3:") {
		t.Errorf("unexpected error text: %q", err.Error())
	}
}
