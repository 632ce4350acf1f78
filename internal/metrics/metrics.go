// Package metrics exposes Prometheus counters for generation runs. The
// serve command publishes them; every other command just increments.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RunsTotal counts generation runs by outcome ("accepted", "rejected",
	// "error").
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blueprint",
		Name:      "generation_runs_total",
		Help:      "Generation runs by outcome.",
	}, []string{"outcome"})

	// DraftsTotal counts synthesized scenario drafts.
	DraftsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blueprint",
		Name:      "drafts_generated_total",
		Help:      "Scenario drafts synthesized.",
	})

	// FindingsTotal counts validator and gate findings by check
	// ("mapping", "evidence", "title", "wording", "coverage").
	FindingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blueprint",
		Name:      "findings_total",
		Help:      "Validator and gate findings by check.",
	}, []string{"check"})

	// FetchRequestsTotal counts work-item fetches by result ("ok", "error").
	FetchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blueprint",
		Name:      "fetch_requests_total",
		Help:      "Work-item fetch requests by result.",
	}, []string{"result"})
)

// Handler returns the HTTP handler that serves the default registry.
func Handler() http.Handler { return promhttp.Handler() }
