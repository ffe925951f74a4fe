package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"jd_url": "https://boards.greenhouse.io/acme/jobs/1",
		"store_path": "docs.db",
		"port": 9090,
		"missing_limit": 5,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/1", cfg.JDURL)
	assert.Equal(t, "docs.db", cfg.StorePath)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5, cfg.MissingLimit)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	jdFile := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(jdFile, []byte("Looking for Go"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty", cfg: Config{}},
		{name: "existing jd file", cfg: Config{JD: jdFile, Port: 8080, MissingLimit: 12}},
		{name: "mutually exclusive", cfg: Config{JD: jdFile, JDURL: "https://example.com/job"}, wantErr: "mutually exclusive"},
		{name: "bad port", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "negative limit", cfg: Config{MissingLimit: -1}, wantErr: "missing_limit"},
		{name: "missing jd file", cfg: Config{JD: "/nonexistent/jd.txt"}, wantErr: "job description file not found"},
		{name: "missing document", cfg: Config{Document: "/nonexistent/doc.json"}, wantErr: "document file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		JD:          "default-jd.txt",
		StorePath:   "default.db",
		DatabaseURL: "postgres://localhost/resume",
		Port:        9000,
	}

	partial := Config{
		Document:     "resume.json",
		MissingLimit: 3,
	}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, "resume.json", merged.Document)
	assert.Equal(t, 3, merged.MissingLimit)

	assert.Equal(t, "default-jd.txt", merged.JD)
	assert.Equal(t, "default.db", merged.StorePath)
	assert.Equal(t, "postgres://localhost/resume", merged.DatabaseURL)
	assert.Equal(t, 9000, merged.Port)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	merged := (&Config{JD: "jd.txt"}).MergeWithDefaults(Config{})

	assert.Equal(t, "jd.txt", merged.JD)
	assert.Equal(t, DefaultStorePath, merged.StorePath)
	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, DefaultMissingLimit, merged.MissingLimit)
}
