package types

import "strconv"

// ScoreReport is the coverage of a keyword set by the current content.
// Hits and Misses follow the keyword set's insertion order.
type ScoreReport struct {
	CoveragePercent int      `json:"coverage_percent"`
	Hits            []string `json:"hits"`
	Misses          []string `json:"misses"`
}

// SkillMatch reports whether a single listed skill is itself one of the keywords
type SkillMatch struct {
	Skill string `json:"skill"`
	Hit   bool   `json:"hit"`
}

// ATSView is everything the preview needs to render the ATS panel.
// Computed is false when no keyword set is loaded; Percent is meaningless then.
type ATSView struct {
	Computed     bool         `json:"computed"`
	Percent      int          `json:"percent"`
	Keywords     []string     `json:"keywords"`
	Hits         []string     `json:"hits"`
	Misses       []string     `json:"misses"`
	SkillMatches []SkillMatch `json:"skill_matches"`
	MissingLine  string       `json:"missing_line,omitempty"`
}

// Badge returns the short badge text, e.g. "ATS: 33%" or "ATS: —".
func (v ATSView) Badge() string {
	if !v.Computed {
		return "ATS: —"
	}
	return "ATS: " + strconv.Itoa(v.Percent) + "%"
}
