// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultTemplate is the preview template used when none is stored
	DefaultTemplate = "minimal"
	// DefaultAccent is the preview accent color used when none is stored
	DefaultAccent = "#3b82f6"
	// linksPlaceholder is shown when no contact fields are filled in
	linksPlaceholder = "email | phone | location | website"
)

// Document is the full resume form state as it is saved and loaded
type Document struct {
	Basics     Basics       `json:"basics"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Projects   []Project    `json:"projects"`
	Template   string       `json:"template" validate:"omitempty,oneof=minimal modern compact"`
	Accent     string       `json:"accent" validate:"omitempty,hexcolor"`
	JDText     string       `json:"jd_text,omitempty"`
	JDKeywords []string     `json:"jdKeywords"`
}

// Basics holds the header fields of the resume
type Basics struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Summary  string `json:"summary"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website" validate:"omitempty,url"`
}

// Experience represents a single work experience card
type Experience struct {
	Role    string `json:"role"`
	Company string `json:"company"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Desc    string `json:"desc"`
}

// Education represents a single education card
type Education struct {
	Degree string `json:"degree"`
	Inst   string `json:"inst"`
	Year   string `json:"year"`
	Score  string `json:"score"`
}

// Project represents a single project card
type Project struct {
	Name string `json:"name"`
	Tech string `json:"tech"`
	Link string `json:"link"`
	Desc string `json:"desc"`
}

// ContentSnapshot is a read of every text field that contributes to keyword coverage
type ContentSnapshot struct {
	Summary    string
	Skills     []string
	Experience []Experience
	Projects   []Project
	Degrees    []string
}

// NewDocument returns an empty document with default presentation settings
func NewDocument() *Document {
	return &Document{
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
		Projects:   []Project{},
		Template:   DefaultTemplate,
		Accent:     DefaultAccent,
		JDKeywords: []string{},
	}
}

// Validate validates the Document using the validator.
func (d *Document) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// Snapshot returns the content fields read by the keyword indexer.
func (d *Document) Snapshot() ContentSnapshot {
	degrees := make([]string, 0, len(d.Education))
	for _, e := range d.Education {
		degrees = append(degrees, e.Degree)
	}
	return ContentSnapshot{
		Summary:    d.Basics.Summary,
		Skills:     d.Skills,
		Experience: d.Experience,
		Projects:   d.Projects,
		Degrees:    degrees,
	}
}

// LinksLine joins the non-empty contact fields the way the preview header shows them.
func (d *Document) LinksLine() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{d.Basics.Email, d.Basics.Phone, d.Basics.Location, d.Basics.Website} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return linksPlaceholder
	}
	return strings.Join(parts, " | ")
}

// AddSkill appends a trimmed skill, ignoring blank input.
// Returns false when nothing was added.
func (d *Document) AddSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return false
	}
	d.Skills = append(d.Skills, skill)
	return true
}

// RemoveSkill removes the skill at index i. Out-of-range indexes are ignored.
func (d *Document) RemoveSkill(i int) bool {
	if i < 0 || i >= len(d.Skills) {
		return false
	}
	d.Skills = append(d.Skills[:i], d.Skills[i+1:]...)
	return true
}
