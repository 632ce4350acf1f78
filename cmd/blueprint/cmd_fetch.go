package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"blueprint/internal/fetch"
	"blueprint/internal/logging"
	"blueprint/internal/metrics"
)

var fetchFlags struct {
	outputPath string
	baseURL    string
	project    string
	keyPath    string
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <work-item-id>",
	Short: "Fetch a story work item from the tracking API into a story file",
	Long: `Fetch pulls one work item over the REST API, strips the rich-text
acceptance criteria to plain bullets and writes a story YAML file that
generate accepts.

The base URL and project come from the config file, or from the
BLUEPRINT_API_URL and BLUEPRINT_PROJECT environment variables, or from
flags. The API token is read from the key file (first line).`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	f := fetchCmd.Flags()
	f.StringVarP(&fetchFlags.outputPath, "output", "o", "", "Story file path (default: stdout)")
	f.StringVar(&fetchFlags.baseURL, "base-url", "", "Tracking API base URL (default: config, then $BLUEPRINT_API_URL)")
	f.StringVar(&fetchFlags.project, "project", "", "Project name (default: config, then $BLUEPRINT_PROJECT)")
	f.StringVar(&fetchFlags.keyPath, "api-key", "", "Path to the API key file (default: config)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	logger := logging.New("fetch")
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("work item id must be numeric, got %q", args[0])
	}

	baseURL := firstNonEmpty(fetchFlags.baseURL, cfg.Fetch.BaseURL, os.Getenv("BLUEPRINT_API_URL"))
	if baseURL == "" {
		return fmt.Errorf("tracking API base URL is required\n\nSet fetch.base_url in %s, or:\n  export BLUEPRINT_API_URL=https://dev.azure.com/your-org", rootFlags.configPath)
	}
	project := firstNonEmpty(fetchFlags.project, cfg.Fetch.Project, os.Getenv("BLUEPRINT_PROJECT"))
	if project == "" {
		return fmt.Errorf("project name is required\n\nSet fetch.project in %s, or:\n  export BLUEPRINT_PROJECT=your-project", rootFlags.configPath)
	}

	keyPath := firstNonEmpty(fetchFlags.keyPath, cfg.Fetch.APIKeyPath)
	apiKey, err := fetch.ReadAPIKey(keyPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read api key: %w", err)
	}

	client := fetch.NewClient(fetch.Config{BaseURL: baseURL, Project: project, APIKey: apiKey})
	s, err := client.FetchStory(cmd.Context(), id)
	if err != nil {
		metrics.FetchRequestsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.FetchRequestsTotal.WithLabelValues("ok").Inc()
	logger.Info("work item fetched", "story_id", s.ID, "criteria", len(s.AC), "qa_prep", len(s.QAPrep))

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal story: %w", err)
	}
	if fetchFlags.outputPath == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(fetchFlags.outputPath, data, 0644); err != nil {
		return fmt.Errorf("write story file: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
