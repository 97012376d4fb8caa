package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sidverma/skillgap/internal/assessment"
	"github.com/sidverma/skillgap/internal/catalog"
)

// ScoresCSV renders per-category scores as CSV with a header row.
// Categories appear in catalog order; unscored categories are omitted.
func ScoresCSV(scores map[catalog.Category]float64) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	w.Write([]string{"Category", "Score"})
	for _, cat := range catalog.All() {
		score, ok := scores[cat]
		if !ok {
			continue
		}
		w.Write([]string{string(cat), fmt.Sprintf("%.1f", score)})
	}
	w.Flush()

	return b.String()
}

// Markdown assembles the full report document: student identity,
// overall score, the per-category score table with grades, and the
// narrative analysis.
func Markdown(student assessment.StudentInfo, scores map[catalog.Category]float64, overall float64, narrative string) string {
	var b strings.Builder

	b.WriteString("# Skill Gap Analysis Report\n\n")

	b.WriteString("## Student Information\n\n")
	fmt.Fprintf(&b, "- **Name:** %s\n", student.Name)
	fmt.Fprintf(&b, "- **Email:** %s\n", student.Email)
	fmt.Fprintf(&b, "- **Department:** %s\n", student.Department)
	fmt.Fprintf(&b, "- **Year:** %s\n\n", student.Year)

	fmt.Fprintf(&b, "## Overall Score: %.1f%%\n\n", overall)

	b.WriteString("## Detailed Scores\n\n")
	b.WriteString("| Category | Score | Grade |\n")
	b.WriteString("|----------|-------|-------|\n")
	for _, cat := range catalog.All() {
		score, ok := scores[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %.1f%% | %s |\n", cat, score, catalog.Grade(score))
	}
	b.WriteString("\n")

	b.WriteString("## Detailed Analysis\n\n")
	b.WriteString(narrative)
	b.WriteString("\n")

	return b.String()
}

// WriteFiles saves the CSV and markdown artifacts into dir and returns
// their paths.
func WriteFiles(dir, csvData, markdown string) (csvPath, mdPath string, err error) {
	csvPath = filepath.Join(dir, "assessment_scores.csv")
	mdPath = filepath.Join(dir, "full_assessment_report.md")

	if err := os.WriteFile(csvPath, []byte(csvData), 0o644); err != nil {
		return "", "", fmt.Errorf("write scores csv: %w", err)
	}
	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		return "", "", fmt.Errorf("write report markdown: %w", err)
	}
	return csvPath, mdPath, nil
}
