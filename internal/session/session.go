// Package session owns the keyword set state machine and recomputes the ATS view
// whenever the keyword set or the resume content changes.
package session

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultMissingLimit is how many missing keywords the preview line lists before truncating
const DefaultMissingLimit = 12

// State is the keyword set lifecycle state
type State int

const (
	// Empty means no job description has been analyzed, or it was cleared
	Empty State = iota
	// Populated means a keyword set from a successful extraction is loaded
	Populated
)

func (s State) String() string {
	switch s {
	case Populated:
		return "populated"
	default:
		return "empty"
	}
}

// Session holds one document and its keyword set. It is not safe for concurrent use;
// each control flow owns its own Session.
type Session struct {
	doc          *types.Document
	jdText       string
	keywords     *ats.TokenSet
	state        State
	missingLimit int
	view         types.ATSView
}

// Option configures a Session
type Option func(*Session)

// WithMissingLimit sets how many missing keywords the preview line shows.
func WithMissingLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.missingLimit = n
		}
	}
}

// New creates a session for doc. A keyword list stored on the document is restored
// without re-running extraction.
func New(doc *types.Document, opts ...Option) *Session {
	if doc == nil {
		doc = types.NewDocument()
	}
	s := &Session{
		doc:          doc,
		missingLimit: DefaultMissingLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Restore(doc.JDText, doc.JDKeywords)
	return s
}

// Analyze extracts a new keyword set from jobDescription and replaces the current one.
// Blank input returns ats.ErrNoInput and leaves the existing keyword set untouched.
func (s *Session) Analyze(jobDescription string) error {
	keywords, err := ats.ExtractKeywords(jobDescription)
	if err != nil {
		return err
	}
	s.jdText = strings.TrimSpace(jobDescription)
	s.keywords = keywords
	s.state = Populated
	s.recompute()
	return nil
}

// Clear drops the keyword set and the job description text.
func (s *Session) Clear() {
	s.jdText = ""
	s.keywords = nil
	s.state = Empty
	s.recompute()
}

// Restore loads a persisted keyword sequence. An empty sequence leaves the session Empty.
func (s *Session) Restore(jdText string, keywords []string) {
	s.jdText = jdText
	s.keywords = ats.KeywordSetFromSlice(keywords)
	if s.keywords.Len() > 0 {
		s.state = Populated
	} else {
		s.state = Empty
	}
	s.recompute()
}

// SetDocument replaces the resume content. The keyword set is kept.
func (s *Session) SetDocument(doc *types.Document) {
	if doc == nil {
		doc = types.NewDocument()
	}
	s.doc = doc
	s.recompute()
}

// Update applies a content mutation and recomputes the view before returning.
func (s *Session) Update(mutate func(doc *types.Document)) {
	mutate(s.doc)
	s.recompute()
}

// AddSkill appends a skill chip. Blank input is ignored.
func (s *Session) AddSkill(skill string) bool {
	added := s.doc.AddSkill(skill)
	if added {
		s.recompute()
	}
	return added
}

// RemoveSkill removes the skill chip at index i.
func (s *Session) RemoveSkill(i int) bool {
	removed := s.doc.RemoveSkill(i)
	if removed {
		s.recompute()
	}
	return removed
}

// State returns the keyword set state.
func (s *Session) State() State {
	return s.state
}

// Keywords returns the current keyword set; it is empty in the Empty state.
func (s *Session) Keywords() *ats.TokenSet {
	return s.keywords
}

// JobDescription returns the text the current keyword set was extracted from.
func (s *Session) JobDescription() string {
	return s.jdText
}

// Report returns the ATS view computed after the last mutation.
func (s *Session) Report() types.ATSView {
	return s.view
}

// Document returns the document with the keyword state copied onto it for saving.
func (s *Session) Document() *types.Document {
	s.doc.JDText = s.jdText
	s.doc.JDKeywords = s.keywords.Tokens()
	return s.doc
}

func (s *Session) recompute() {
	s.view = Recompute(s.doc, s.keywords, s.missingLimit)
}

// Recompute derives the ATS view from a document and keyword set. It has no hidden
// state: identical inputs always produce an identical view.
func Recompute(doc *types.Document, keywords *ats.TokenSet, missingLimit int) types.ATSView {
	if doc == nil {
		doc = types.NewDocument()
	}
	view := types.ATSView{
		Keywords:     keywords.Tokens(),
		Hits:         []string{},
		Misses:       []string{},
		SkillMatches: ats.ClassifySkills(doc.Skills, keywords),
	}

	report, err := ats.Score(keywords, ats.IndexContent(doc.Snapshot()))
	if err != nil {
		// ats.ErrNotComputed is the only error Score returns
		return view
	}

	view.Computed = true
	view.Percent = report.CoveragePercent
	view.Hits = report.Hits
	view.Misses = report.Misses
	view.MissingLine = MissingLine(report.Misses, missingLimit)
	return view
}

// MissingLine formats the preview line listing missing keywords, truncated after limit.
func MissingLine(misses []string, limit int) string {
	if len(misses) == 0 {
		return ""
	}
	if limit <= 0 {
		limit = DefaultMissingLimit
	}
	shown := misses
	suffix := ""
	if len(misses) > limit {
		shown = misses[:limit]
		suffix = "…"
	}
	return fmt.Sprintf("Missing keywords: %s%s", strings.Join(shown, ", "), suffix)
}
