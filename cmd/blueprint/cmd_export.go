package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blueprint/internal/export"
)

var exportFlags struct {
	csvPath        string
	objectivesPath string
}

var exportCmd = &cobra.Command{
	Use:   "export <suite.json>",
	Short: "Render a suite artifact as CSV or a review objectives list",
	Long: `Export reads a suite artifact and writes the formats the JSON step
skipped: the CSV import sheet and the plain id/objective list used for
review passes.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.csvPath, "csv", "", "CSV output path")
	f.StringVar(&exportFlags.objectivesPath, "objectives", "", "Objectives list output path")
}

func runExport(_ *cobra.Command, args []string) error {
	if exportFlags.csvPath == "" && exportFlags.objectivesPath == "" {
		return fmt.Errorf("nothing to do: pass --csv and/or --objectives")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read suite: %w", err)
	}
	var a export.Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("parse suite: %w", err)
	}

	if exportFlags.csvPath != "" {
		if err := writeCSVFile(exportFlags.csvPath, a.Drafts); err != nil {
			return err
		}
	}
	if exportFlags.objectivesPath != "" {
		if err := writeObjectivesFile(exportFlags.objectivesPath, a.Drafts); err != nil {
			return err
		}
	}
	return nil
}
