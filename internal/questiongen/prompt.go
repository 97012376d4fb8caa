package questiongen

import (
	"fmt"
	"strings"

	"github.com/sidverma/skillgap/internal/catalog"
)

const systemPrompt = `You are an assessment item writer for a workplace skill-gap assessment aimed at university students.

Rules:
- Generate exactly 5 multiple-choice questions for the given skill category.
- Each question tests one of the listed focus areas and presents a realistic workplace scenario.
- Each question has exactly 4 options labeled "a", "b", "c", "d" and exactly one correct answer.
- Include a brief explanation of why the correct option is right.
- Options should be plausible and similar in length; the correct one must not stand out.
- Return only JSON matching the requested format, with no commentary around it.`

// buildUserMessage constructs the per-category generation request.
func buildUserMessage(cat catalog.Category, d catalog.Details) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", cat)
	fmt.Fprintf(&b, "Description: %s\n", d.Description)
	fmt.Fprintf(&b, "Focus areas: %s\n", strings.Join(d.FocusAreas, ", "))

	b.WriteString(`
Generate 5 scenario-based multiple-choice questions assessing this category.
Tag each question with the focus area it tests ("focus_area").

Respond with a JSON object of the form:
{
  "questions": [
    {
      "question": "What would you do in this workplace scenario...?",
      "focus_area": "one of the focus areas",
      "options": {
        "a": "First option",
        "b": "Second option",
        "c": "Third option",
        "d": "Fourth option"
      },
      "correct": "a",
      "explanation": "Why this is the correct answer"
    }
  ]
}`)

	return b.String()
}
