// Package fetch pulls story work items from the work-tracking REST API and
// turns their rich-text fields into plain evidence bullets.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"blueprint/internal/story"
)

// Config holds the work-tracking API connection settings.
type Config struct {
	BaseURL string // e.g. https://dev.azure.com/your-org
	Project string
	APIKey  string // personal access token
}

// Client fetches work items over the REST API.
type Client struct {
	HTTPClient *http.Client
	Config     Config
}

// NewClient returns a client with the given config. HTTPClient may be nil
// to use http.DefaultClient.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return &Client{Config: cfg, HTTPClient: http.DefaultClient}
}

// Work item field reference names used by the tracking system.
const (
	fieldTitle       = "System.Title"
	fieldAcceptance  = "Microsoft.VSTS.Common.AcceptanceCriteria"
	fieldDescription = "System.Description"
	fieldQAPrep      = "Custom.QAPreparation"
)

type workItem struct {
	ID     int                    `json:"id"`
	Fields map[string]interface{} `json:"fields"`
}

// FetchStory fetches one work item and maps its fields to a Story. The
// acceptance criteria field is rich text; it is stripped to plain bullets.
func (c *Client) FetchStory(ctx context.Context, id int) (*story.Story, error) {
	u := fmt.Sprintf("%s/%s/_apis/wit/workitems/%d?api-version=7.0", c.Config.BaseURL, c.Config.Project, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if c.Config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.Config.APIKey)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("work item %d: %s: %s", id, resp.Status, string(body))
	}
	var wi workItem
	if err := json.NewDecoder(resp.Body).Decode(&wi); err != nil {
		return nil, fmt.Errorf("decode work item: %w", err)
	}

	s := &story.Story{
		ID:      fmt.Sprintf("%d", wi.ID),
		Feature: fieldString(wi.Fields, fieldTitle),
		AC:      Bullets(fieldString(wi.Fields, fieldAcceptance)),
		QAPrep:  Bullets(fieldString(wi.Fields, fieldQAPrep)),
	}
	if len(s.AC) == 0 {
		// Some teams keep criteria in the description instead.
		s.AC = Bullets(fieldString(wi.Fields, fieldDescription))
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("work item %d: %w", id, err)
	}
	return s, nil
}

func fieldString(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

// ReadAPIKey reads the first line of path and returns it trimmed.
func ReadAPIKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Split(string(data), "\n")[0]), nil
}
