package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"blueprint/internal/draft"
	"blueprint/internal/enrich"
	"blueprint/internal/export"
	"blueprint/internal/logging"
	"blueprint/internal/metrics"
	"blueprint/internal/phrasebank"
	"blueprint/internal/story"
	"blueprint/internal/synth"
	"blueprint/internal/validate"
)

var generateFlags struct {
	outputPath     string
	csvPath        string
	objectivesPath string
	strict         bool
	enrichDrafts   bool
	parallel       int
}

var generateCmd = &cobra.Command{
	Use:   "generate <story-file> [story-file...]",
	Short: "Generate test-case drafts from one or more story files",
	Long: `Generate reads story files (YAML or JSON), synthesizes test-case drafts
from their acceptance criteria and QA prep notes, runs the validators and
quality gates, and writes one JSON artifact per story.

Usage:
  blueprint generate story.yaml                  # artifact to .blueprint/output/
  blueprint generate story.yaml -o suite.json    # artifact to explicit path
  blueprint generate a.yaml b.yaml -o out/       # one artifact per story
  blueprint generate story.yaml --strict         # non-zero exit on findings

Findings never abort generation by default: the drafts and the findings are
both written so a reviewer can fix wording by hand. --strict makes any
finding fail the command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.outputPath, "output", "o", "", "Artifact path, or directory when given several stories (default: .blueprint/output/)")
	f.StringVar(&generateFlags.csvPath, "csv", "", "Also write the suite as CSV (single story only)")
	f.StringVar(&generateFlags.objectivesPath, "objectives", "", "Also write an id/objective review list (single story only)")
	f.BoolVar(&generateFlags.strict, "strict", false, "Fail when any validator or gate reports a finding")
	f.BoolVar(&generateFlags.enrichDrafts, "enrich", false, "Polish draft wording with the configured Gemini model ($GEMINI_API_KEY)")
	f.IntVar(&generateFlags.parallel, "parallel", 4, "Max stories processed concurrently")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.New("generate")
	if len(args) > 1 && (generateFlags.csvPath != "" || generateFlags.objectivesPath != "") {
		return fmt.Errorf("--csv and --objectives only apply to a single story file")
	}

	enricher, err := buildEnricher(cmd.Context())
	if err != nil {
		return err
	}

	bank, err := phrasebank.Open(cfg.Phrasebank)
	if err != nil {
		return fmt.Errorf("open phrasebank: %w", err)
	}
	defer bank.Close()

	strict := generateFlags.strict || cfg.Strict
	var rejected bool

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(generateFlags.parallel)
	outcomes := make([]*synth.Outcome, len(args))
	stories := make([]*story.Story, len(args))
	for i, path := range args {
		g.Go(func() error {
			s, err := story.LoadFromPath(path)
			if err != nil {
				metrics.RunsTotal.WithLabelValues("error").Inc()
				return err
			}
			out, err := generateOne(ctx, s, enricher)
			if err != nil {
				metrics.RunsTotal.WithLabelValues("error").Inc()
				return fmt.Errorf("%s: %w", path, err)
			}
			stories[i], outcomes[i] = s, out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range outcomes {
		s := stories[i]
		artifactPath, err := resolveArtifactPath(s.ID, len(args) > 1)
		if err != nil {
			return err
		}
		if err := writeArtifact(artifactPath, s, out); err != nil {
			return err
		}
		logger.Info("suite written",
			"story_id", s.ID,
			"drafts", len(out.Drafts),
			"findings", len(out.Findings()),
			"path", artifactPath)

		if out.Accepted() {
			if err := bank.Record(s.ID, out.Drafts); err != nil {
				logger.Warn("phrasebank record failed", "error", err)
			}
		} else {
			rejected = true
			for _, f := range out.Findings() {
				fmt.Fprintln(cmd.ErrOrStderr(), "finding:", f)
			}
			printPhrasingHints(cmd, bank, out.Drafts)
		}
	}

	if generateFlags.csvPath != "" {
		if err := writeCSVFile(generateFlags.csvPath, outcomes[0].Drafts); err != nil {
			return err
		}
	}
	if generateFlags.objectivesPath != "" {
		if err := writeObjectivesFile(generateFlags.objectivesPath, outcomes[0].Drafts); err != nil {
			return err
		}
	}

	if strict && rejected {
		return fmt.Errorf("generation rejected by validators or gates (see findings above)")
	}
	return nil
}

// generateOne runs synthesis plus optional enrichment for one story and
// updates the counters.
func generateOne(ctx context.Context, s *story.Story, enricher enrich.Enricher) (*synth.Outcome, error) {
	app := s.App
	if app == "" {
		app = cfg.App
	}
	out, err := synth.Run(synth.Input{
		StoryID: s.ID,
		Feature: s.Feature,
		App:     app,
		AC:      s.AC,
		QAPrep:  s.QAPrep,
	})
	if err != nil {
		return nil, err
	}
	for i := range out.Drafts {
		polished, err := enricher.Polish(ctx, out.Drafts[i])
		if err != nil {
			return nil, fmt.Errorf("enrich %s: %w", out.Drafts[i].ID, err)
		}
		out.Drafts[i] = polished
	}
	observeOutcome(out)
	return out, nil
}

func observeOutcome(out *synth.Outcome) {
	metrics.DraftsTotal.Add(float64(len(out.Drafts)))
	if out.Accepted() {
		metrics.RunsTotal.WithLabelValues("accepted").Inc()
	} else {
		metrics.RunsTotal.WithLabelValues("rejected").Inc()
	}
	metrics.FindingsTotal.WithLabelValues("mapping").Add(float64(len(out.Mapping.Errors)))
	metrics.FindingsTotal.WithLabelValues("evidence").Add(float64(len(out.Evidence.Errors)))
	metrics.FindingsTotal.WithLabelValues("title").Add(float64(len(out.Gates.Title)))
	metrics.FindingsTotal.WithLabelValues("wording").Add(float64(len(out.Gates.Wording)))
	metrics.FindingsTotal.WithLabelValues("coverage").Add(float64(len(out.Gates.Coverage)))
}

// printPhrasingHints offers previously accepted objective wording for the
// coverage types present in a rejected suite, so the reviewer can rephrase
// toward something that already passed.
func printPhrasingHints(cmd *cobra.Command, bank *phrasebank.Bank, drafts []draft.Draft) {
	seen := make(map[string]bool)
	for i := range drafts {
		tag := validate.CoverageTag(&drafts[i])
		if seen[tag] {
			continue
		}
		seen[tag] = true
		prior, err := bank.Suggest(tag)
		if err != nil || prior == "" {
			continue
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "hint: previously accepted %s objective: %s\n", tag, prior)
	}
}

func buildEnricher(ctx context.Context) (enrich.Enricher, error) {
	if !generateFlags.enrichDrafts {
		return enrich.Noop{}, nil
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("--enrich requires the GEMINI_API_KEY environment variable")
	}
	return enrich.NewGemini(ctx, apiKey, cfg.Enrich.Model)
}

// resolveArtifactPath picks the artifact location: the -o flag verbatim for
// a single story, a file inside -o (or the default output dir) otherwise.
func resolveArtifactPath(storyID string, multi bool) (string, error) {
	out := generateFlags.outputPath
	if out != "" && !multi {
		return out, nil
	}
	dir := out
	if dir == "" {
		dir = filepath.Join(".blueprint", "output")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return filepath.Join(dir, fmt.Sprintf("suite-%s.json", storyID)), nil
}

func writeArtifact(path string, s *story.Story, out *synth.Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	defer f.Close()
	return export.WriteJSON(f, &export.Artifact{
		StoryID:     s.ID,
		Feature:     s.Feature,
		GeneratedAt: time.Now().UTC(),
		Accepted:    out.Accepted(),
		Drafts:      out.Drafts,
		Findings:    out.Findings(),
		Skipped:     out.Skipped,
	})
}

func writeCSVFile(path string, drafts []draft.Draft) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()
	return export.WriteCSV(f, drafts)
}

func writeObjectivesFile(path string, drafts []draft.Draft) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create objectives file: %w", err)
	}
	defer f.Close()
	return export.WriteObjectives(f, drafts)
}
