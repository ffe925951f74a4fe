package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var scoreBatchCmd = &cobra.Command{
	Use:   "score-batch <jd-file>...",
	Short: "Score one resume document against several job descriptions",
	Long:  "Extract keywords from each job description file concurrently and report the coverage of the document for each.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScoreBatch,
}

var (
	batchDocumentFile string
	batchOutputFile   string
	batchConcurrency  int
)

func init() {
	scoreBatchCmd.Flags().StringVarP(&batchDocumentFile, "document", "d", "", "Path to resume document JSON (required)")
	scoreBatchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreBatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum job descriptions scored at once")

	rootCmd.AddCommand(scoreBatchCmd)
}

// BatchResult is the coverage of the document for one job description
type BatchResult struct {
	JD string `json:"jd"`
	types.ScoreReport
}

func runScoreBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	documentFile := firstNonEmpty(batchDocumentFile, cfg.Document)
	if documentFile == "" {
		return fmt.Errorf("--document is required")
	}
	doc, err := readDocument(cmd, documentFile)
	if err != nil {
		return err
	}

	// The content index is read-only once built, so every goroutine shares it
	content := ats.IndexContent(doc.Snapshot())
	results := make([]BatchResult, len(args))

	g, ctx := errgroup.WithContext(context.Background())
	if batchConcurrency > 0 {
		g.SetLimit(batchConcurrency)
	}
	for i, path := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := scoreFile(path, content)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = BatchResult{JD: path, ScoreReport: *report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		data, err := json.Marshal(r.ScoreReport)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := schemas.Validate(schemas.KindScoreReport, data); err != nil {
			return fmt.Errorf("report for %s does not validate against schema: %w", r.JD, err)
		}
		if cfg.Verbose {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%-40s ATS: %d%% (%d/%d)\n", r.JD, r.CoveragePercent, len(r.Hits), len(r.Hits)+len(r.Misses))
		}
	}
	return writeJSON(cmd, batchOutputFile, "", results)
}

func scoreFile(path string, content *ats.TokenSet) (*types.ScoreReport, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description file: %w", err)
	}
	keywords, err := ats.ExtractKeywords(string(text))
	if err != nil {
		return nil, err
	}
	return ats.Score(keywords, content)
}
