package ats

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// IndexContent builds the comparable token set from the current resume content.
// Field boundaries are not preserved; only token identity matters.
func IndexContent(snap types.ContentSnapshot) *TokenSet {
	return Normalize(contentText(snap))
}

func contentText(snap types.ContentSnapshot) string {
	parts := make([]string, 0, 2+len(snap.Skills)+3*len(snap.Experience)+3*len(snap.Projects))
	parts = append(parts, snap.Summary)
	parts = append(parts, snap.Skills...)
	for _, e := range snap.Experience {
		parts = append(parts, e.Role, e.Company, e.Desc)
	}
	for _, p := range snap.Projects {
		parts = append(parts, p.Name, p.Tech, p.Desc)
	}
	parts = append(parts, strings.Join(snap.Degrees, " "))
	return strings.Join(parts, " ")
}
