package ats

import "strings"

// The lookup tables below are package-level and never written after init.
// They are unexported so the only access path is the read-only helpers.

// stopwords are low-information tokens dropped from keyword and content sets
var stopwords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "a": {}, "an": {}, "with": {}, "to": {},
	"of": {}, "for": {}, "on": {}, "in": {}, "by": {}, "at": {}, "as": {},
	"is": {}, "are": {}, "be": {}, "from": {}, "this": {}, "that": {},
	"will": {}, "you": {}, "we": {}, "they": {}, "our": {}, "their": {},
	"your": {}, "include": {}, "including": {}, "ability": {}, "plus": {},
	"good": {}, "strong": {}, "must": {}, "have": {}, "has": {}, "using": {},
	"use": {}, "used": {},
}

// synonyms maps a single-word alias to its canonical token.
// Canonical values may contain a space; they are never re-split.
var synonyms = map[string]string{
	"js":          "javascript",
	"node":        "node.js",
	"nodejs":      "node.js",
	"ts":          "typescript",
	"py":          "python",
	"reactjs":     "react",
	"nextjs":      "next.js",
	"next":        "next.js",
	"html5":       "html",
	"css3":        "css",
	"tailwindcss": "tailwind",
	"mui":         "material ui",
	"gcp":         "google cloud",
	"aws":         "amazon web services",
	"azure":       "microsoft azure",
	"postgres":    "postgresql",
}

// bigramWhitelist holds the two-word phrases promoted to a single token
var bigramWhitelist = map[string]struct{}{
	"machine learning":   {},
	"data science":       {},
	"problem solving":    {},
	"cloud computing":    {},
	"rest api":           {},
	"unit testing":       {},
	"test automation":    {},
	"design systems":     {},
	"project management": {},
	"time management":    {},
	"react native":       {},
	"sql server":         {},
	"google cloud":       {},
	"material ui":        {},
}

// dottedTerms are the synonym aliases and canonicals that contain a dot
var dottedTerms = func() map[string]struct{} {
	terms := make(map[string]struct{})
	for alias, canonical := range synonyms {
		for _, t := range []string{alias, canonical} {
			if strings.Contains(t, ".") {
				terms[t] = struct{}{}
			}
		}
	}
	return terms
}()

// IsDottedTerm reports whether word is a synonym-table entry written with a dot, such as "node.js".
func IsDottedTerm(word string) bool {
	_, ok := dottedTerms[word]
	return ok
}

// IsStopword reports whether token is in the stopword set.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// ResolveSynonym returns the canonical form of word, or word itself when it is not an alias.
// word must already be lowercase.
func ResolveSynonym(word string) string {
	if canonical, ok := synonyms[word]; ok {
		return canonical
	}
	return word
}

// IsWhitelistedBigram reports whether phrase is eligible for bigram promotion.
func IsWhitelistedBigram(phrase string) bool {
	_, ok := bigramWhitelist[phrase]
	return ok
}
