package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Publish results.
const (
	PublishPublished = "published"
	PublishFailed    = "failed"
	PublishTerminal  = "terminal"
)

// OutboxMetrics records the outbox publisher loop.
type OutboxMetrics struct {
	batch   *prometheus.HistogramVec
	publish *prometheus.CounterVec
}

func NewOutboxMetrics(reg prometheus.Registerer) *OutboxMetrics {
	if reg == nil {
		return &OutboxMetrics{}
	}
	batch := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "outbox_batch_duration_seconds",
		Help:    "Duration of outbox publish batches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})
	publish := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "outbox_events_total",
		Help: "Outbox events handled by the publisher, by result and event type.",
	}, []string{"result", "event_type"})
	reg.MustRegister(batch, publish)
	return &OutboxMetrics{batch: batch, publish: publish}
}

func (o *OutboxMetrics) ObserveBatch(duration time.Duration, err error) {
	if o == nil || o.batch == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	o.batch.WithLabelValues(result).Observe(duration.Seconds())
}

func (o *OutboxMetrics) IncEvent(result, eventType string) {
	if o == nil || o.publish == nil {
		return
	}
	o.publish.WithLabelValues(normalizeLabel(result), normalizeLabel(eventType)).Inc()
}
