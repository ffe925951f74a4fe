package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume document against a keyword set",
	Long: "Compute the ATS coverage of a resume document. The keyword set comes from --jd (extracted), " +
		"--keywords (an extract-keywords output file), or the keywords saved on the document, in that order.",
	RunE: runScore,
}

var (
	scoreDocumentFile string
	scoreKeywordsFile string
	scoreJDFile       string
	scoreOutputFile   string
	scoreMissingLimit int
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreDocumentFile, "document", "d", "", "Path to resume document JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreKeywordsFile, "keywords", "k", "", "Path to keywords JSON from extract-keywords")
	scoreCmd.Flags().StringVar(&scoreJDFile, "jd", "", "Path to job description text file")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().IntVar(&scoreMissingLimit, "missing-limit", 0, "Missing keywords listed before truncating (verbose report)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	documentFile := firstNonEmpty(scoreDocumentFile, cfg.Document)
	if documentFile == "" {
		return fmt.Errorf("--document is required")
	}
	doc, err := readDocument(cmd, documentFile)
	if err != nil {
		return err
	}

	limit := scoreMissingLimit
	if limit <= 0 {
		limit = cfg.MissingLimit
	}
	s := session.New(doc, session.WithMissingLimit(limit))

	switch {
	case scoreJDFile != "":
		content, err := os.ReadFile(scoreJDFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		if err := s.Analyze(string(content)); err != nil {
			return fmt.Errorf("job description is empty: %w", err)
		}
	case scoreKeywordsFile != "":
		kw, err := readKeywords(scoreKeywordsFile)
		if err != nil {
			return err
		}
		s.Restore(kw.JDText, kw.Keywords)
	}

	view := s.Report()
	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintReport(view)
	}
	if !view.Computed {
		return fmt.Errorf("%s: %w", view.Badge(), ats.ErrNotComputed)
	}

	report := types.ScoreReport{
		CoveragePercent: view.Percent,
		Hits:            view.Hits,
		Misses:          view.Misses,
	}
	return writeJSON(cmd, scoreOutputFile, schemas.KindScoreReport, report)
}

// readKeywords loads and validates an extract-keywords output file.
func readKeywords(path string) (*KeywordsOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}
	if err := schemas.Validate(schemas.KindKeywords, data); err != nil {
		return nil, fmt.Errorf("invalid keywords file: %w", err)
	}
	var kw KeywordsOutput
	if err := json.Unmarshal(data, &kw); err != nil {
		return nil, fmt.Errorf("failed to parse keywords file: %w", err)
	}
	return &kw, nil
}
