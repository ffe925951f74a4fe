package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a resume document to the document store",
	RunE:  runSave,
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a saved resume document",
	RunE:  runLoad,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove a saved resume document",
	RunE:  runClear,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved resume documents",
	RunE:  runList,
}

var (
	storePath    string
	storeDBURL   string
	documentID   string
	saveDocument string
	loadOutput   string
)

func init() {
	for _, c := range []*cobra.Command{saveCmd, loadCmd, clearCmd, listCmd} {
		c.Flags().StringVar(&storePath, "store", "", "SQLite file for saved documents (default from config)")
		c.Flags().StringVar(&storeDBURL, "db-url", "", "PostgreSQL URL (overrides --store and DATABASE_URL)")
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{saveCmd, loadCmd, clearCmd} {
		c.Flags().StringVar(&documentID, "id", "", "Document ID (save generates one when empty)")
	}
	saveCmd.Flags().StringVarP(&saveDocument, "document", "d", "", "Path to resume document JSON (required)")
	loadCmd.Flags().StringVarP(&loadOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
}

// withStore opens the configured store for the duration of fn.
func withStore(fn func(ctx context.Context, store storage.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	store, err := openStore(ctx, cfg, storePath, storeDBURL)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return fn(ctx, store)
}

func parseDocumentID(required bool) (uuid.UUID, error) {
	if documentID == "" {
		if required {
			return uuid.Nil, fmt.Errorf("--id is required")
		}
		return uuid.New(), nil
	}
	id, err := uuid.Parse(documentID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid document ID: %w", err)
	}
	return id, nil
}

func runSave(cmd *cobra.Command, _ []string) error {
	if saveDocument == "" {
		return fmt.Errorf("--document is required")
	}
	id, err := parseDocumentID(false)
	if err != nil {
		return err
	}
	doc, err := readDocument(cmd, saveDocument)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	return withStore(func(ctx context.Context, store storage.Store) error {
		if err := store.Save(ctx, id, doc); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), id.String())
		return err
	})
}

func runLoad(cmd *cobra.Command, _ []string) error {
	id, err := parseDocumentID(true)
	if err != nil {
		return err
	}
	return withStore(func(ctx context.Context, store storage.Store) error {
		doc, err := store.Load(ctx, id)
		if err != nil {
			return err
		}
		return writeJSON(cmd, loadOutput, schemas.KindDocument, doc)
	})
}

func runClear(cmd *cobra.Command, _ []string) error {
	id, err := parseDocumentID(true)
	if err != nil {
		return err
	}
	return withStore(func(ctx context.Context, store storage.Store) error {
		if err := store.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to clear document: %w", err)
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", id)
		return err
	})
}

func runList(cmd *cobra.Command, _ []string) error {
	return withStore(func(ctx context.Context, store storage.Store) error {
		entries, err := store.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list documents: %w", err)
		}
		if entries == nil {
			entries = []storage.Entry{}
		}
		return writeJSON(cmd, "", "", entries)
	})
}
