// Package mcp exposes scenario synthesis as MCP tools so agent clients can
// generate, validate and inspect suites over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"blueprint/internal/draft"
	"blueprint/internal/gates"
	"blueprint/internal/logging"
	"blueprint/internal/synth"
)

// Server wraps the MCP SDK server and keeps the outcome of the latest
// generation run for follow-up report queries.
type Server struct {
	MCPServer *sdkmcp.Server

	mu   sync.Mutex
	last *lastRun
}

type lastRun struct {
	StoryID     string
	Feature     string
	GeneratedAt time.Time
	Outcome     *synth.Outcome
}

// NewServer creates an MCP server with the suite tools registered.
func NewServer(version string) *Server {
	s := &Server{}
	if version == "" {
		version = "dev"
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "blueprint", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "generate_suite",
		Description: "Generate test-case drafts from a story's acceptance criteria and QA prep notes. Runs the validators and quality gates and returns drafts plus findings.",
	}, s.handleGenerateSuite)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "validate_suite",
		Description: "Run the title, wording and coverage gates over externally supplied drafts without generating anything.",
	}, s.handleValidateSuite)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_report",
		Description: "Get a summary of the most recent generate_suite run: draft ids, coverage map and findings.",
	}, s.handleGetReport)
}

// --- Tool input/output types ---

type generateSuiteInput struct {
	StoryID string   `json:"story_id" jsonschema:"work item id the suite is generated for"`
	Feature string   `json:"feature" jsonschema:"feature display name used in titles"`
	App     string   `json:"app,omitempty" jsonschema:"application name for launch and close steps"`
	AC      []string `json:"acceptance_criteria" jsonschema:"acceptance criteria bullets, one statement each"`
	QAPrep  []string `json:"qa_prep,omitempty" jsonschema:"QA preparation notes, one statement each"`
}

type generateSuiteOutput struct {
	Drafts   []draft.Draft `json:"drafts"`
	Accepted bool          `json:"accepted"`
	Findings []string      `json:"findings,omitempty"`
	Skipped  []string      `json:"skipped,omitempty"`
}

type validateSuiteInput struct {
	DraftsJSON string `json:"drafts_json" jsonschema:"JSON array of draft objects to check"`
	ACCount    int    `json:"ac_count" jsonschema:"number of acceptance bullets the drafts should cover"`
}

type validateSuiteOutput struct {
	Passed   bool     `json:"passed"`
	Title    []string `json:"title,omitempty"`
	Wording  []string `json:"wording,omitempty"`
	Coverage []string `json:"coverage,omitempty"`
}

type getReportInput struct{}

type getReportOutput struct {
	StoryID     string           `json:"story_id"`
	Feature     string           `json:"feature"`
	GeneratedAt time.Time        `json:"generated_at"`
	DraftIDs    []string         `json:"draft_ids"`
	Coverage    map[int][]string `json:"coverage"`
	Accepted    bool             `json:"accepted"`
	Findings    []string         `json:"findings,omitempty"`
	Skipped     []string         `json:"skipped,omitempty"`
}

// --- Tool handlers ---

func (s *Server) handleGenerateSuite(_ context.Context, _ *sdkmcp.CallToolRequest, input generateSuiteInput) (*sdkmcp.CallToolResult, generateSuiteOutput, error) {
	logger := logging.New("mcp")
	out, err := synth.Run(synth.Input{
		StoryID: input.StoryID,
		Feature: input.Feature,
		App:     input.App,
		AC:      input.AC,
		QAPrep:  input.QAPrep,
	})
	if err != nil {
		return nil, generateSuiteOutput{}, fmt.Errorf("generate suite: %w", err)
	}
	logger.Info("suite generated",
		"story_id", input.StoryID,
		"drafts", len(out.Drafts),
		"accepted", out.Accepted())

	s.mu.Lock()
	s.last = &lastRun{
		StoryID:     input.StoryID,
		Feature:     input.Feature,
		GeneratedAt: time.Now().UTC(),
		Outcome:     out,
	}
	s.mu.Unlock()

	return nil, generateSuiteOutput{
		Drafts:   out.Drafts,
		Accepted: out.Accepted(),
		Findings: out.Findings(),
		Skipped:  out.Skipped,
	}, nil
}

func (s *Server) handleValidateSuite(_ context.Context, _ *sdkmcp.CallToolRequest, input validateSuiteInput) (*sdkmcp.CallToolResult, validateSuiteOutput, error) {
	var drafts []draft.Draft
	if err := json.Unmarshal([]byte(input.DraftsJSON), &drafts); err != nil {
		return nil, validateSuiteOutput{}, fmt.Errorf("decode drafts_json: %w", err)
	}
	if input.ACCount < 0 {
		return nil, validateSuiteOutput{}, fmt.Errorf("ac_count must not be negative")
	}
	report := gates.Run(drafts, make([]bool, input.ACCount))
	return nil, validateSuiteOutput{
		Passed:   report.Passed(),
		Title:    report.Title,
		Wording:  report.Wording,
		Coverage: report.Coverage,
	}, nil
}

func (s *Server) handleGetReport(_ context.Context, _ *sdkmcp.CallToolRequest, _ getReportInput) (*sdkmcp.CallToolResult, getReportOutput, error) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last == nil {
		return nil, getReportOutput{}, fmt.Errorf("no suite has been generated in this session")
	}

	ids := make([]string, len(last.Outcome.Drafts))
	for i := range last.Outcome.Drafts {
		ids[i] = last.Outcome.Drafts[i].ID
	}
	return nil, getReportOutput{
		StoryID:     last.StoryID,
		Feature:     last.Feature,
		GeneratedAt: last.GeneratedAt,
		DraftIDs:    ids,
		Coverage:    gates.BuildCoverage(last.Outcome.Drafts),
		Accepted:    last.Outcome.Accepted(),
		Findings:    last.Outcome.Findings(),
		Skipped:     last.Outcome.Skipped,
	}, nil
}
