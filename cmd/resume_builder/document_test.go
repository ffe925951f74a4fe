package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadClear(t *testing.T) {
	store := filepath.Join(t.TempDir(), "docs.db")
	doc := writeFile(t, "doc.json", `{"basics": {"name": "Ada"}, "skills": ["Go"], "jdKeywords": ["golang", "docker", "golang", "go"]}`)

	stdout, _, err := runCLI(t, "save", "--store", store, "--document", doc)
	require.NoError(t, err)
	id, err := uuid.Parse(strings.TrimSpace(stdout))
	require.NoError(t, err)

	stdout, _, err = runCLI(t, "load", "--store", store, "--id", id.String())
	require.NoError(t, err)
	var loaded types.Document
	require.NoError(t, json.Unmarshal([]byte(stdout), &loaded))
	assert.Equal(t, "Ada", loaded.Basics.Name)
	assert.Equal(t, []string{"golang", "docker"}, loaded.JDKeywords)
	assert.Equal(t, types.DefaultTemplate, loaded.Template)

	stdout, _, err = runCLI(t, "list", "--store", store)
	require.NoError(t, err)
	var entries []storage.Entry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ID)

	stdout, _, err = runCLI(t, "clear", "--store", store, "--id", id.String())
	require.NoError(t, err)
	assert.Contains(t, stdout, "Cleared "+id.String())

	_, _, err = runCLI(t, "load", "--store", store, "--id", id.String())
	var notFound *storage.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSave_WithExplicitID(t *testing.T) {
	store := filepath.Join(t.TempDir(), "docs.db")
	doc := writeFile(t, "doc.json", testDocument)
	id := uuid.New()

	stdout, _, err := runCLI(t, "save", "--store", store, "--document", doc, "--id", id.String())
	require.NoError(t, err)
	assert.Equal(t, id.String(), strings.TrimSpace(stdout))
}

func TestSave_RejectsInvalidDocument(t *testing.T) {
	store := filepath.Join(t.TempDir(), "docs.db")
	doc := writeFile(t, "doc.json", `{"template": "fancy"}`)

	_, _, err := runCLI(t, "save", "--store", store, "--document", doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid document")
}

func TestLoad_RequiresID(t *testing.T) {
	_, _, err := runCLI(t, "load", "--store", filepath.Join(t.TempDir(), "docs.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--id is required")
}

func TestLoad_InvalidID(t *testing.T) {
	_, _, err := runCLI(t, "load", "--store", filepath.Join(t.TempDir(), "docs.db"), "--id", "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid document ID")
}

func TestList_Empty(t *testing.T) {
	stdout, _, err := runCLI(t, "list", "--store", filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(stdout))
}

func TestStoreFromConfig(t *testing.T) {
	store := filepath.Join(t.TempDir(), "configured.db")
	cfg := writeFile(t, "config.json", `{"store_path": "`+store+`"}`)

	stdout, _, err := runCLI(t, "list", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(stdout))
	assert.FileExists(t, store)
}
