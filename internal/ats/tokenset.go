// Package ats implements keyword coverage scoring of resume content against a job description.
package ats

import (
	"encoding/json"
	"strings"
)

// TokenSet is an insertion-ordered, duplicate-free set of normalized tokens.
// It is used both for the keyword set extracted from a job description and for
// the token set indexed from resume content. A TokenSet is never mutated after
// construction; a nil *TokenSet behaves as an empty set.
type TokenSet struct {
	order []string
	index map[string]struct{}
}

func newTokenSet(capacity int) *TokenSet {
	return &TokenSet{
		order: make([]string, 0, capacity),
		index: make(map[string]struct{}, capacity),
	}
}

// add inserts token if it is not already present. Returns false for duplicates.
func (s *TokenSet) add(token string) bool {
	if _, exists := s.index[token]; exists {
		return false
	}
	s.index[token] = struct{}{}
	s.order = append(s.order, token)
	return true
}

// Has reports whether token is a member of the set.
func (s *TokenSet) Has(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[token]
	return ok
}

// Len returns the number of tokens in the set.
func (s *TokenSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Tokens returns the tokens in insertion order. The returned slice is a copy.
func (s *TokenSet) Tokens() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Equal reports whether both sets have the same members, ignoring order.
func (s *TokenSet) Equal(other *TokenSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, t := range s.Tokens() {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as its ordered token sequence.
func (s *TokenSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tokens())
}

// KeywordSetFromSlice rebuilds a keyword set from a persisted token sequence
// without re-running extraction. Order is preserved; repeats and tokens that fail
// the length or stopword filters are dropped.
func KeywordSetFromSlice(tokens []string) *TokenSet {
	set := newTokenSet(len(tokens))
	for _, t := range tokens {
		addFiltered(set, strings.ToLower(strings.TrimSpace(t)))
	}
	return set
}
