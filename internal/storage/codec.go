package storage

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/types"
)

// Encode serializes a document. The keyword set is written as a plain ordered list of strings.
func Encode(doc *types.Document) ([]byte, error) {
	if doc == nil {
		doc = types.NewDocument()
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Decode deserializes a document, substituting defaults for anything missing or malformed.
// It always returns a usable document; the error is non-nil only when data is not a
// JSON object at all, in which case the returned document is the empty default.
func Decode(data []byte) (*types.Document, error) {
	doc := types.NewDocument()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return doc, &LoadError{Message: "saved document is not a JSON object", Cause: err}
	}

	decodeField(raw, "basics", &doc.Basics)
	decodeField(raw, "skills", &doc.Skills)
	decodeField(raw, "experience", &doc.Experience)
	decodeField(raw, "education", &doc.Education)
	decodeField(raw, "projects", &doc.Projects)
	decodeField(raw, "template", &doc.Template)
	decodeField(raw, "accent", &doc.Accent)
	decodeField(raw, "jd_text", &doc.JDText)
	decodeField(raw, "jdKeywords", &doc.JDKeywords)

	applyDefaults(doc)
	return doc, nil
}

// decodeField decodes raw[key] into dst, leaving dst at its default when the key is
// absent, null, or of the wrong shape.
func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) {
	value, ok := raw[key]
	if !ok || string(value) == "null" {
		return
	}
	var tmp T
	if err := json.Unmarshal(value, &tmp); err != nil {
		log.Printf("[store] ignoring malformed field %q: %v", key, err)
		return
	}
	*dst = tmp
}

func applyDefaults(doc *types.Document) {
	skills := make([]string, 0, len(doc.Skills))
	for _, s := range doc.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	doc.Skills = skills

	if doc.Experience == nil {
		doc.Experience = []types.Experience{}
	}
	if doc.Education == nil {
		doc.Education = []types.Education{}
	}
	if doc.Projects == nil {
		doc.Projects = []types.Project{}
	}
	if doc.Template == "" {
		doc.Template = types.DefaultTemplate
	}
	if doc.Accent == "" {
		doc.Accent = types.DefaultAccent
	}
	doc.JDKeywords = ats.KeywordSetFromSlice(doc.JDKeywords).Tokens()
}
