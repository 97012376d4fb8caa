package assessment

import (
	"fmt"
	"strings"
)

// StudentInfo identifies the person taking the assessment. The fields
// are opaque to the core; they are echoed into the report.
type StudentInfo struct {
	Name       string
	Email      string
	Department string
	Year       string
}

// Validate checks that every field is filled in. A failure is a
// recoverable input error: the caller re-prompts, nothing else changes.
func (s StudentInfo) Validate() error {
	var missing []string
	if strings.TrimSpace(s.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(s.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(s.Department) == "" {
		missing = append(missing, "department")
	}
	if strings.TrimSpace(s.Year) == "" {
		missing = append(missing, "year")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required fields missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
