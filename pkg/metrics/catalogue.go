package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Lot assignment outcomes.
const (
	LotOutcomeCreated    = "created"
	LotOutcomeReassigned = "reassigned"
	LotOutcomePreserved  = "preserved"
)

// CatalogueMetrics records lot numbering, cascade and merge activity.
type CatalogueMetrics struct {
	lots     *prometheus.CounterVec
	cascades *prometheus.CounterVec
	merge    *prometheus.HistogramVec
}

// NewCatalogueMetrics registers the catalogue metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewCatalogueMetrics(reg prometheus.Registerer) *CatalogueMetrics {
	if reg == nil {
		return &CatalogueMetrics{}
	}
	lots := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalogue_lot_assignments_total",
		Help: "Item detail upserts by lot outcome.",
	}, []string{"outcome"})
	cascades := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalogue_cascade_deletions_total",
		Help: "Records removed by cascade deletion, by path and record kind.",
	}, []string{"path", "kind"})
	merge := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalogue_merge_duration_seconds",
		Help:    "Duration of catalogue merges in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})
	reg.MustRegister(lots, cascades, merge)
	return &CatalogueMetrics{
		lots:     lots,
		cascades: cascades,
		merge:    merge,
	}
}

// IncLotAssignment counts one detail upsert with the given outcome.
func (c *CatalogueMetrics) IncLotAssignment(outcome string) {
	if c == nil || c.lots == nil {
		return
	}
	c.lots.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// AddCascadeDeletions adds n removed records of kind on path.
func (c *CatalogueMetrics) AddCascadeDeletions(path, kind string, n int64) {
	if c == nil || c.cascades == nil || n <= 0 {
		return
	}
	c.cascades.WithLabelValues(normalizeLabel(path), normalizeLabel(kind)).Add(float64(n))
}

// ObserveMerge records a merge duration; err selects the result label.
func (c *CatalogueMetrics) ObserveMerge(duration time.Duration, err error) {
	if c == nil || c.merge == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.merge.WithLabelValues(result).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
