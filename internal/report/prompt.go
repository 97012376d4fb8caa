package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sidverma/skillgap/internal/assessment"
	"github.com/sidverma/skillgap/internal/catalog"
)

const reportSystemPrompt = `You are a career advisor writing a skill gap analysis report for a university student.
Write in clear, encouraging, professional prose. Use markdown headings and lists. Do not invent scores; use only the numbers given.`

// rankedScore pairs a category with its score for strength/weakness
// ranking.
type rankedScore struct {
	Category catalog.Category
	Score    float64
}

// buildReportMessage constructs the narrative-report request from the
// student identity and the score map.
func buildReportMessage(student assessment.StudentInfo, scores map[catalog.Category]float64, overall float64) string {
	ranked := rankScores(scores)

	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}
	bottom := ranked
	if len(bottom) > 3 {
		bottom = bottom[len(bottom)-3:]
	}

	var b strings.Builder

	b.WriteString("Generate a detailed skill gap analysis report for:\n")
	fmt.Fprintf(&b, "Name: %s\n", student.Name)
	fmt.Fprintf(&b, "Email: %s\n", student.Email)
	fmt.Fprintf(&b, "Department: %s\n", student.Department)
	fmt.Fprintf(&b, "Year: %s\n\n", student.Year)

	fmt.Fprintf(&b, "Overall Score: %.1f%%\n\n", overall)

	b.WriteString("Detailed Scores:\n")
	for _, r := range ranked {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", r.Category, r.Score)
	}

	b.WriteString("\nTop Strengths:\n")
	for _, r := range top {
		fmt.Fprintf(&b, "- %s (%.1f%%)\n", r.Category, r.Score)
	}

	b.WriteString("\nAreas for Improvement:\n")
	for i := len(bottom) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "- %s (%.1f%%)\n", bottom[i].Category, bottom[i].Score)
	}

	b.WriteString(`
Please provide:
1. Executive summary
2. Detailed analysis of each skill category
3. Specific recommendations for improvement
4. Suggested learning resources and next steps
5. Career path recommendations based on strengths
6. Action plan for the next 3 months`)

	return b.String()
}

// rankScores orders categories by score descending, breaking ties by
// catalog order for deterministic output.
func rankScores(scores map[catalog.Category]float64) []rankedScore {
	var ranked []rankedScore
	for _, cat := range catalog.All() {
		if score, ok := scores[cat]; ok {
			ranked = append(ranked, rankedScore{Category: cat, Score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
