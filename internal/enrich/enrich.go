// Package enrich optionally polishes draft wording through an LLM while
// the structural fields stay authoritative.
package enrich

import (
	"context"

	"blueprint/internal/draft"
)

// Enricher rewrites a draft's prose fields. Implementations must not add,
// remove or reorder steps and must leave ID, SourceACID and Platform
// untouched.
type Enricher interface {
	Polish(ctx context.Context, d draft.Draft) (draft.Draft, error)
}

// Noop returns drafts unchanged. It is the default when no model is
// configured.
type Noop struct{}

func (Noop) Polish(_ context.Context, d draft.Draft) (draft.Draft, error) {
	return d, nil
}
