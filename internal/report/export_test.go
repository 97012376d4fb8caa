package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidverma/skillgap/internal/assessment"
	"github.com/sidverma/skillgap/internal/catalog"
)

func testStudent() assessment.StudentInfo {
	return assessment.StudentInfo{
		Name:       "Asha Rao",
		Email:      "asha@example.edu",
		Department: "Computer Science",
		Year:       "3rd Year",
	}
}

func testScores() map[catalog.Category]float64 {
	return map[catalog.Category]float64{
		catalog.CoreEmployability: 80,
		catalog.SoftSkills:        65,
		catalog.AILiteracy:        40,
	}
}

func TestScoresCSV(t *testing.T) {
	out := ScoresCSV(testScores())
	lines := strings.Split(strings.TrimSpace(out), "\n")

	require.Equal(t, "Category,Score", lines[0])
	// Catalog order, not map order.
	assert.Equal(t, "Core Employability Skills,80.0", lines[1])
	assert.Equal(t, "Soft Skills,65.0", lines[2])
	assert.Equal(t, "AI Literacy,40.0", lines[3])
	assert.Len(t, lines, 4, "unscored categories must be omitted")
}

func TestScoresCSV_Empty(t *testing.T) {
	out := ScoresCSV(nil)
	assert.Equal(t, "Category,Score", strings.TrimSpace(out))
}

func TestMarkdown(t *testing.T) {
	doc := Markdown(testStudent(), testScores(), 61.7, "## Executive Summary\n\nSolid base.")

	assert.Contains(t, doc, "# Skill Gap Analysis Report")
	assert.Contains(t, doc, "**Name:** Asha Rao")
	assert.Contains(t, doc, "**Department:** Computer Science")
	assert.Contains(t, doc, "## Overall Score: 61.7%")
	assert.Contains(t, doc, "| Core Employability Skills | 80.0% | Excellent |")
	assert.Contains(t, doc, "| Soft Skills | 65.0% | Average |")
	assert.Contains(t, doc, "| AI Literacy | 40.0% | Needs Improvement |")
	assert.Contains(t, doc, "## Detailed Analysis")
	assert.Contains(t, doc, "Solid base.")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	csvPath, mdPath, err := WriteFiles(dir, "Category,Score\n", "# Report\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "assessment_scores.csv"), csvPath)
	assert.Equal(t, filepath.Join(dir, "full_assessment_report.md"), mdPath)

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "Category,Score\n", string(csvData))

	mdData, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Equal(t, "# Report\n", string(mdData))
}
