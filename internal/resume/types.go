// Package resume manages the user's structured resume: editing,
// Markdown rendering, AI-assisted rewriting of entries, and importing
// text from an existing PDF.
package resume

// Contact holds the header block of a resume.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Entry is one dated item in an experience, education, or projects
// section.
type Entry struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"` // empty means current
	Description  string `json:"description"`
}

// Resume is the full structured document stored per user.
type Resume struct {
	Contact    Contact  `json:"contact"`
	Summary    string   `json:"summary"`
	Skills     []string `json:"skills"`
	Experience []Entry  `json:"experience"`
	Education  []Entry  `json:"education"`
	Projects   []Entry  `json:"projects"`
}

// SectionType identifies a resume section for AI improvement.
type SectionType string

const (
	SectionSummary    SectionType = "summary"
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionProject    SectionType = "project"
)
