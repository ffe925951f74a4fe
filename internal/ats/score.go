package ats

import (
	"math"

	"github.com/jonathan/resume-builder/internal/types"
)

// Score computes keyword coverage of content. Hits and misses keep the keyword set's order.
// An empty keyword set returns ErrNotComputed rather than a 0% report.
func Score(keywords, content *TokenSet) (*types.ScoreReport, error) {
	if keywords.Len() == 0 {
		return nil, ErrNotComputed
	}

	report := &types.ScoreReport{
		Hits:   []string{},
		Misses: []string{},
	}
	for _, k := range keywords.Tokens() {
		if content.Has(k) {
			report.Hits = append(report.Hits, k)
		} else {
			report.Misses = append(report.Misses, k)
		}
	}

	report.CoveragePercent = coveragePercent(len(report.Hits), keywords.Len())
	return report, nil
}

// coveragePercent rounds hits/total to a whole percent. Rounding never reaches
// 100 while a keyword is missing, nor 0 while one is covered: at those two ends the
// result is 99 or 1 where plain round(100*hits/max(1,total)) would give 100 or 0,
// so that 100 means every keyword is covered and 0 means none is.
func coveragePercent(hits, total int) int {
	pct := int(math.Round(100 * float64(hits) / float64(max(1, total))))
	switch {
	case pct == 100 && hits < total:
		return 99
	case pct == 0 && hits > 0:
		return 1
	}
	return pct
}

// ClassifySkills flags each listed skill as a hit when its own normalized form is a keyword.
// This is independent of the aggregate score.
func ClassifySkills(skills []string, keywords *TokenSet) []types.SkillMatch {
	matches := make([]types.SkillMatch, 0, len(skills))
	for _, s := range skills {
		matches = append(matches, types.SkillMatch{
			Skill: s,
			Hit:   keywords.Has(NormalizeToken(s)),
		})
	}
	return matches
}
