package ats

import "strings"

// ExtractKeywords builds the target keyword set from job-description text.
// Blank input returns ErrNoInput so callers can keep the keyword set they already have.
func ExtractKeywords(jobDescription string) (*TokenSet, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrNoInput
	}
	return Normalize(jobDescription), nil
}
