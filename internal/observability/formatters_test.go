package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywords([]string{"react", "javascript", "rest api"})
	output := buf.String()

	assert.Contains(t, output, "JOB DESCRIPTION KEYWORDS")
	assert.Contains(t, output, "Keywords extracted: 3")
	assert.Contains(t, output, "react, javascript, rest api")
}

func TestPrintKeywords_WrapsLongLists(t *testing.T) {
	keywords := make([]string, 20)
	for i := range keywords {
		keywords[i] = "kubernetes"
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywords(keywords)

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.NotContains(t, line, "...", "list should wrap rather than truncate")
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(types.ATSView{
		Computed:     true,
		Percent:      33,
		Keywords:     []string{"react", "javascript", "rest api"},
		Hits:         []string{"react"},
		Misses:       []string{"javascript", "rest api"},
		SkillMatches: []types.SkillMatch{{Skill: "React", Hit: true}, {Skill: "Node.js"}},
		MissingLine:  "Missing keywords: javascript, rest api",
	})
	output := buf.String()

	assert.Contains(t, output, "ATS: 33%")
	assert.Contains(t, output, "(1 of 3 keywords)")
	assert.Contains(t, output, "• javascript")
	assert.Contains(t, output, "[✓] React")
	assert.Contains(t, output, "[ ] Node.js")
	assert.Contains(t, output, "Missing keywords: javascript, rest api")
}

func TestPrintReport_NotComputed(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(types.ATSView{})
	output := buf.String()

	assert.Contains(t, output, "ATS: —")
	assert.NotContains(t, output, "0%")
}

func TestPrintReport_TruncatesSections(t *testing.T) {
	misses := make([]string, maxItemsToShow+3)
	for i := range misses {
		misses[i] = "keyword"
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(types.ATSView{Computed: true, Keywords: misses, Misses: misses})

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestions("Based on role: SRE.", []string{"First line.", "Second line."})
	output := buf.String()

	assert.Contains(t, output, "SUGGESTED LINES")
	assert.Contains(t, output, "1. First line.")
	assert.Contains(t, output, "2. Second line.")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
