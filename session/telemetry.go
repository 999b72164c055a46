package session

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	// searchesTotal counts searches by outcome: "found", "unreachable", "error".
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_searches_total",
		Help: "Total searches by outcome",
	}, []string{"result"})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Search duration",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	})

	expandedNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_expanded_nodes",
		Help:    "Nodes expanded per search",
		Buckets: []float64{1, 10, 100, 1000, 10000},
	})

	// editsTotal counts edits by operation and by "applied" / "rejected".
	editsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_edits_total",
		Help: "Total session edits by operation and outcome",
	}, []string{"op", "result"})
)

var (
	tracerOnce    sync.Once
	sessionTracer trace.Tracer
)

// getTracer returns the OTel tracer, initializing it lazily so that a
// provider installed after package init is still picked up.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		sessionTracer = otel.Tracer("github.com/katalvlaran/gridpath/session")
	})
	return sessionTracer
}
