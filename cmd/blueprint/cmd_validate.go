package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blueprint/internal/export"
	"blueprint/internal/gates"
)

var validateFlags struct {
	acCount int
}

var validateCmd = &cobra.Command{
	Use:   "validate <suite.json>",
	Short: "Run the quality gates over a previously generated suite",
	Long: `Validate re-checks a suite artifact against the title, wording and
coverage gates. Use it after hand-editing drafts to confirm the edits
still comply.

--ac-count is the number of acceptance bullets the suite should cover;
it defaults to the highest requirement ordinal the draft ids imply.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().IntVar(&validateFlags.acCount, "ac-count", 0, "Number of acceptance bullets the suite must cover")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read suite: %w", err)
	}
	var a export.Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("parse suite: %w", err)
	}

	acCount := validateFlags.acCount
	if acCount == 0 {
		for ord := range gates.BuildCoverage(a.Drafts) {
			if ord > acCount {
				acCount = ord
			}
		}
	}

	report := gates.Run(a.Drafts, make([]bool, acCount))
	if report.Passed() {
		fmt.Fprintf(cmd.OutOrStdout(), "suite %s: %d drafts, all gates passed\n", a.StoryID, len(a.Drafts))
		return nil
	}
	for _, f := range report.Findings() {
		fmt.Fprintln(cmd.ErrOrStderr(), "finding:", f)
	}
	return fmt.Errorf("suite %s: %d gate findings", a.StoryID, len(report.Findings()))
}
