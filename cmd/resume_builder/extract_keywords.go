package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var extractKeywordsCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "Extract the ATS keyword set from a job description",
	Long: "Read a job description from a text file or a posting URL and write the ordered keyword set " +
		"as JSON that validates against the keywords schema.",
	RunE: runExtractKeywords,
}

var (
	extractJDFile     string
	extractURL        string
	extractUseBrowser bool
	extractOutputFile string
)

func init() {
	extractKeywordsCmd.Flags().StringVar(&extractJDFile, "jd", "", "Path to job description text file")
	extractKeywordsCmd.Flags().StringVar(&extractURL, "url", "", "Job posting URL to fetch")
	extractKeywordsCmd.Flags().BoolVar(&extractUseBrowser, "browser", false, "Render the posting in a headless browser when the HTTP page has too little text")
	extractKeywordsCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(extractKeywordsCmd)
}

// KeywordsOutput is the extract-keywords result
type KeywordsOutput struct {
	URL      string   `json:"url,omitempty"`
	Platform string   `json:"platform,omitempty"`
	JDText   string   `json:"jd_text"`
	Keywords []string `json:"keywords"`
}

func runExtractKeywords(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jdFile := firstNonEmpty(extractJDFile, cfg.JD)
	jdURL := firstNonEmpty(extractURL, cfg.JDURL)
	if extractJDFile != "" && extractURL != "" {
		return fmt.Errorf("--jd and --url are mutually exclusive")
	}
	if extractJDFile != "" {
		jdURL = ""
	} else if extractURL != "" {
		jdFile = ""
	}

	var out KeywordsOutput
	switch {
	case jdFile != "":
		content, err := os.ReadFile(jdFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		out.JDText = string(content)
	case jdURL != "":
		opts := fetch.DefaultOptions()
		opts.UseBrowser = extractUseBrowser || cfg.UseBrowser
		opts.Verbose = cfg.Verbose
		jd, err := fetch.FetchJobDescription(context.Background(), jdURL, opts)
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
		out.URL = jd.URL
		out.Platform = string(jd.Platform)
		out.JDText = jd.Text
	default:
		return fmt.Errorf("must provide either --jd or --url")
	}

	keywords, err := ats.ExtractKeywords(out.JDText)
	if err != nil {
		if errors.Is(err, ats.ErrNoInput) {
			return fmt.Errorf("job description is empty: %w", err)
		}
		return err
	}
	out.Keywords = keywords.Tokens()

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintKeywords(out.Keywords)
	}

	return writeJSON(cmd, extractOutputFile, schemas.KindKeywords, out)
}
