package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"blueprint/internal/draft"
)

const systemPrompt = `You rewrite manual test-case prose. You receive a test
case draft as JSON and return the same JSON with only the "objective" field
and the step "action"/"expected" strings reworded for clarity. Keep the same
number of steps in the same order. Never change "id", "title",
"source_ac_id", "platform" or "evidence_refs". Never introduce the word
"or" into a step. Return only the JSON object.`

// Gemini polishes drafts with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini enricher. model may be empty to use the
// default flash model.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Polish sends the draft to the model and decodes the rewritten copy. Any
// structural drift in the reply is rejected and the original draft is
// returned with the error.
func (g *Gemini) Polish(ctx context.Context, d draft.Draft) (draft.Draft, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return d, fmt.Errorf("marshal draft %s: %w", d.ID, err)
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(string(payload)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		})
	if err != nil {
		return d, fmt.Errorf("generate content for %s: %w", d.ID, err)
	}

	var polished draft.Draft
	text := strings.TrimSpace(resp.Text())
	if err := json.Unmarshal([]byte(text), &polished); err != nil {
		return d, fmt.Errorf("decode model reply for %s: %w", d.ID, err)
	}
	if err := checkShape(d, polished); err != nil {
		return d, fmt.Errorf("model reply for %s: %w", d.ID, err)
	}
	return polished, nil
}

// checkShape rejects replies that alter anything but prose.
func checkShape(orig, got draft.Draft) error {
	if got.ID != orig.ID {
		return fmt.Errorf("id changed from %q to %q", orig.ID, got.ID)
	}
	if got.SourceACID != orig.SourceACID {
		return fmt.Errorf("source_ac_id changed")
	}
	if got.Platform != orig.Platform {
		return fmt.Errorf("platform changed")
	}
	if len(got.Steps) != len(orig.Steps) {
		return fmt.Errorf("step count changed from %d to %d", len(orig.Steps), len(got.Steps))
	}
	return nil
}
