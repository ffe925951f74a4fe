package ats

import "errors"

var (
	// ErrNoInput is returned when keyword extraction is asked to analyze blank text.
	// Callers must keep any existing keyword set rather than replace it with an empty one.
	ErrNoInput = errors.New("no job description input")

	// ErrNotComputed is returned when scoring is requested against an empty keyword set.
	// It must be rendered as "no analysis yet", never as a 0% score.
	ErrNotComputed = errors.New("ats score not computed: keyword set is empty")
)
