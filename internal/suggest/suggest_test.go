package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Experience(t *testing.T) {
	lines, err := Generate(Request{
		Skills:  []string{"Go", "React", "SQL", "Docker", "AWS", "Kafka", "Redis"},
		Company: "Acme",
		Type:    TypeExperience,
	})
	require.NoError(t, err)
	require.Len(t, lines, 8)

	assert.Equal(t, "Delivered impact by using Go, React, SQL, Docker, AWS, Kafka to ship features with quality and speed.", lines[0])
	assert.NotContains(t, lines[0], "Redis")
	assert.Equal(t, "Improved Acme performance by 20–40% via code-splitting and caching.", lines[3])
}

func TestGenerate_ProjectDefaults(t *testing.T) {
	lines, err := Generate(Request{Type: TypeProject})
	require.NoError(t, err)
	require.Len(t, lines, 8)

	assert.Equal(t, "Architected the project with clean modules; boosted maintainability.", lines[3])
	assert.Equal(t, "Containerized app for reproducible local dev and deployments.", lines[7])
}

func TestGenerate_ExperienceDefaultCompany(t *testing.T) {
	lines, err := Generate(Request{Company: "   ", Type: TypeExperience})
	require.NoError(t, err)
	assert.Contains(t, lines[3], "the product")
}

func TestGenerate_InvalidType(t *testing.T) {
	for _, typ := range []string{"", "education"} {
		lines, err := Generate(Request{Type: typ})
		assert.Error(t, err, "type %q", typ)
		assert.Nil(t, lines)
	}
}

func TestInfo(t *testing.T) {
	assert.Equal(t, "Based on role: Software Engineer.", Info(Request{}))
	assert.Equal(t, "Based on role: SRE • company: Acme • project: Atlas.",
		Info(Request{Role: "SRE", Company: "Acme", Project: "Atlas"}))
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		selected []string
		want     string
	}{
		{name: "empty existing", existing: "  ", selected: []string{"A.", "B."}, want: "A. B."},
		{name: "append", existing: "Built APIs.", selected: []string{"A."}, want: "Built APIs. A."},
		{name: "nothing selected", existing: "Built APIs. ", selected: nil, want: "Built APIs."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.existing, tt.selected))
		})
	}
}
