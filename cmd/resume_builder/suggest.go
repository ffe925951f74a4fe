package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest bullet lines for an experience or project entry",
	Long: "Print canned bullet suggestions built from the role, skills, and company or project name. " +
		"With --select, the chosen lines are appended to --desc and the resulting description is printed.",
	RunE: runSuggest,
}

var (
	suggestRole    string
	suggestCompany string
	suggestProject string
	suggestType    string
	suggestSkills  string
	suggestSelect  string
	suggestDesc    string
)

func init() {
	suggestCmd.Flags().StringVar(&suggestRole, "role", "", "Target role")
	suggestCmd.Flags().StringVar(&suggestCompany, "company", "", "Company name (experience entries)")
	suggestCmd.Flags().StringVar(&suggestProject, "project", "", "Project name (project entries)")
	suggestCmd.Flags().StringVar(&suggestType, "type", suggest.TypeExperience, "Entry type: exp or proj")
	suggestCmd.Flags().StringVar(&suggestSkills, "skills", "", "Comma-separated skills")
	suggestCmd.Flags().StringVar(&suggestSelect, "select", "", "Comma-separated 1-based line numbers to apply")
	suggestCmd.Flags().StringVar(&suggestDesc, "desc", "", "Existing description the selected lines are appended to")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	req := suggest.Request{
		Role:    suggestRole,
		Skills:  splitList(suggestSkills),
		Company: suggestCompany,
		Project: suggestProject,
		Type:    suggestType,
	}
	lines, err := suggest.Generate(req)
	if err != nil {
		return err
	}

	if suggestSelect == "" {
		observability.NewPrinter(cmd.OutOrStdout()).PrintSuggestions(suggest.Info(req), lines)
		return nil
	}

	selected, err := pickLines(lines, suggestSelect)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), suggest.Apply(suggestDesc, selected))
	return err
}

// pickLines resolves comma-separated 1-based indexes against lines, in the order given.
func pickLines(lines []string, selection string) ([]string, error) {
	var picked []string
	for _, field := range splitList(selection) {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(lines) {
			return nil, fmt.Errorf("invalid selection %q: want a number between 1 and %d", field, len(lines))
		}
		picked = append(picked, lines[n-1])
	}
	return picked, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
