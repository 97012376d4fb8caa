package app

import (
	"github.com/sidverma/skillgap/internal/catalog"
)

// questionsReadyMsg is sent when a category's question set has been
// generated and cached on the session.
type questionsReadyMsg struct {
	Category catalog.Category
	Err      error
}

// reportReadyMsg is sent when the narrative report has been produced.
type reportReadyMsg struct {
	Narrative string
}

// reportSavedMsg is sent when the report artifacts have been written
// to disk.
type reportSavedMsg struct {
	CSVPath string
	MDPath  string
	Err     error
}
