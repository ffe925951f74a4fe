package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

// loadConfig reads the --config file, if any, and fills in package defaults.
func loadConfig() (config.Config, error) {
	cfg := &config.Config{}
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	merged := cfg.MergeWithDefaults(config.Config{})
	if verbose {
		merged.Verbose = true
	}
	return merged, nil
}

// readDocument loads a resume document from a JSON file. Content that is not a JSON
// object is reported as a warning and replaced by the empty default document.
func readDocument(cmd *cobra.Command, path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}
	doc, err := storage.Decode(data)
	if err != nil {
		var loadErr *storage.LoadError
		if !errors.As(err, &loadErr) {
			return nil, err
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, using an empty document\n", err)
	}
	return doc, nil
}

// writeJSON marshals v, validates it against the schema for kind, and writes it to
// path or, when path is empty, to the command's stdout.
func writeJSON(cmd *cobra.Command, path string, kind schemas.Kind, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if kind != "" {
		if err := schemas.Validate(kind, jsonBytes); err != nil {
			// Distinguish between validation errors (data doesn't match schema) and schema load errors
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	if path == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Output: %s\n", path)
	return nil
}

// openStore opens the document store named by flags, falling back to the config.
func openStore(ctx context.Context, cfg config.Config, storePath, databaseURL string) (storage.Store, error) {
	opts := storage.Options{
		DatabaseURL: firstNonEmpty(databaseURL, os.Getenv("DATABASE_URL"), cfg.DatabaseURL),
		Path:        firstNonEmpty(storePath, cfg.StorePath),
	}
	store, err := storage.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}
	return store, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
