package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backfillPagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cipherscan",
		Subsystem: "counterpart_backfill",
		Name:      "pages_total",
		Help:      "Count of processed backfill pages.",
	}, []string{"network", "status"})
	backfillRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cipherscan",
		Subsystem: "counterpart_backfill",
		Name:      "rows_total",
		Help:      "Count of shielded flow rows updated by the backfill.",
	}, []string{"network", "status"})
	backfillPageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cipherscan",
		Subsystem: "counterpart_backfill",
		Name:      "page_duration_seconds",
		Help:      "Duration of processing one backfill page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Backfill tracks metrics for the counterpart address backfill job.
type Backfill struct {
	network string
}

// NewBackfill constructs a metrics collector for the backfill job.
func NewBackfill(network string) *Backfill {
	if network == "" {
		network = "unknown"
	}
	return &Backfill{network: network}
}

// ObservePage records the outcome of one page of flow rows.
func (m Backfill) ObservePage(err error, rows int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	backfillPagesTotal.WithLabelValues(m.network, status).Inc()
	backfillRowsTotal.WithLabelValues(m.network, status).Add(float64(rows))
	backfillPageDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}
