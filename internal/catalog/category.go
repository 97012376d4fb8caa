// Package catalog defines the fixed set of skill categories the
// assessment covers. The catalog is immutable and loaded at process
// start; every other package treats an unknown category as a
// programming error.
package catalog

import "fmt"

// Category is one skill domain being assessed.
type Category string

const (
	CoreEmployability Category = "Core Employability Skills"
	SoftSkills        Category = "Soft Skills"
	Professional      Category = "Professional Skills"
	AILiteracy        Category = "AI Literacy"
	DomainSpecific    Category = "Domain-Specific Skills"
	JobApplication    Category = "Job Application Skills"
	Entrepreneurial   Category = "Entrepreneurial Skills"
	ProjectManagement Category = "Project Management Skills"
)

// Details describes a category for prompt construction and display.
type Details struct {
	Description string
	FocusAreas  []string
}

// order fixes the assessment sequence.
var order = []Category{
	CoreEmployability,
	SoftSkills,
	Professional,
	AILiteracy,
	DomainSpecific,
	JobApplication,
	Entrepreneurial,
	ProjectManagement,
}

var details = map[Category]Details{
	CoreEmployability: {
		Description: "Basic skills required for employment",
		FocusAreas:  []string{"Problem Solving", "Time Management", "Critical Thinking", "Adaptability"},
	},
	SoftSkills: {
		Description: "Interpersonal and communication abilities",
		FocusAreas:  []string{"Communication", "Teamwork", "Leadership", "Emotional Intelligence"},
	},
	Professional: {
		Description: "Skills specific to professional workplace",
		FocusAreas:  []string{"Business Ethics", "Professional Communication", "Work Ethics", "Industry Knowledge"},
	},
	AILiteracy: {
		Description: "Understanding and working with AI technologies",
		FocusAreas:  []string{"AI Basics", "AI Tools", "Data Understanding", "AI Ethics"},
	},
	DomainSpecific: {
		Description: "Technical skills for specific field",
		FocusAreas:  []string{"Technical Knowledge", "Industry Tools", "Best Practices", "Technical Problem Solving"},
	},
	JobApplication: {
		Description: "Skills for job search and application",
		FocusAreas:  []string{"Resume Writing", "Interview Skills", "Personal Branding", "Job Search Strategies"},
	},
	Entrepreneurial: {
		Description: "Skills for business and innovation",
		FocusAreas:  []string{"Innovation", "Risk Management", "Business Planning", "Market Analysis"},
	},
	ProjectManagement: {
		Description: "Skills for managing projects and teams",
		FocusAreas:  []string{"Project Planning", "Team Management", "Risk Assessment", "Resource Allocation"},
	},
}

// All returns every category in assessment order.
func All() []Category {
	out := make([]Category, len(order))
	copy(out, order)
	return out
}

// Count returns the number of configured categories.
func Count() int {
	return len(order)
}

// Get returns the details for a category. An unknown category is a
// configuration error: the set is closed, so hitting this means a bug
// upstream.
func Get(c Category) (Details, error) {
	d, ok := details[c]
	if !ok {
		return Details{}, fmt.Errorf("unknown category: %q", c)
	}
	return d, nil
}

// Grade maps a percentage score to its performance band.
func Grade(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Average"
	default:
		return "Needs Improvement"
	}
}
