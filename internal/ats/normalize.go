package ats

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTokenLength is the shortest token kept after synonym resolution
const minTokenLength = 3

// Normalize converts raw text into a set of comparable tokens.
//
// Unigrams come first in order of appearance, followed by whitelisted bigrams.
// A bigram is formed from each adjacent pair of raw words, with each word
// synonym-resolved before the whitelist check. Components of a promoted
// bigram are still emitted as unigrams when they pass the filters.
func Normalize(text string) *TokenSet {
	words := tokenize(text)
	set := newTokenSet(len(words))

	for _, w := range words {
		addFiltered(set, ResolveSynonym(w))
	}

	for i := 0; i+1 < len(words); i++ {
		phrase := ResolveSynonym(words[i]) + " " + ResolveSynonym(words[i+1])
		if IsWhitelistedBigram(phrase) {
			addFiltered(set, phrase)
		}
	}

	return set
}

// NormalizeToken lowercases, trims and synonym-resolves a whole string as one token.
// It does not split on whitespace, so a skill like "REST API" stays "rest api".
func NormalizeToken(s string) string {
	return ResolveSynonym(strings.ToLower(strings.TrimSpace(s)))
}

// Keep reports whether a resolved token survives the length and stopword filters.
func Keep(token string) bool {
	return utf8.RuneCountInString(token) >= minTokenLength && !IsStopword(token)
}

func addFiltered(set *TokenSet, token string) {
	if Keep(token) {
		set.add(token)
	}
}

// tokenize lowercases text, turns punctuation into separators and splits on whitespace.
// A dot is a separator too, except inside a word the synonym table knows as a whole
// ("node.js", "next.js"); "e.g." or "apis.strong" are split apart.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}
	fields := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if !strings.Contains(f, ".") {
			words = append(words, f)
			continue
		}
		if trimmed := strings.Trim(f, "."); IsDottedTerm(trimmed) {
			words = append(words, trimmed)
			continue
		}
		for _, part := range strings.Split(f, ".") {
			if part != "" {
				words = append(words, part)
			}
		}
	}
	return words
}

func isSeparator(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', ',', ';', ':', '!', '?', '/', '|':
		return true
	}
	return unicode.IsSpace(r)
}
