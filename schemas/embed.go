// Package schemas embeds the JSON Schema files for the documents the CLI and API read and write.
package schemas

import _ "embed"

// Document is the schema for a saved resume document.
//
//go:embed document.schema.json
var Document string

// Keywords is the schema for an extracted keyword file.
//
//go:embed keywords.schema.json
var Keywords string

// ScoreReport is the schema for a coverage report.
//
//go:embed score_report.schema.json
var ScoreReport string
