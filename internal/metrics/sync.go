package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cipherscan",
		Subsystem: "block_sync",
		Name:      "heights_total",
		Help:      "Count of indexed block heights.",
	}, []string{"network", "mode", "status"})
	syncHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cipherscan",
		Subsystem: "block_sync",
		Name:      "height_duration_seconds",
		Help:      "Duration of indexing a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "mode", "status"})
	syncBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cipherscan",
		Subsystem: "block_sync",
		Name:      "batch_duration_seconds",
		Help:      "Duration of a catch-up batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	syncLag = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cipherscan",
		Subsystem: "block_sync",
		Name:      "tip_lag_blocks",
		Help:      "Distance between the node tip and the local indexed height.",
	}, []string{"network"})
)

// Sync tracks metrics for the block sync engine.
type Sync struct {
	network string
}

// NewSync constructs a metrics collector for the sync engine.
func NewSync(network string) *Sync {
	if network == "" {
		network = "unknown"
	}
	return &Sync{network: network}
}

// ObserveHeight records the outcome and duration of indexing one height.
func (m Sync) ObserveHeight(mode string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncHeightsTotal.WithLabelValues(m.network, mode, status).Inc()
	syncHeightDuration.WithLabelValues(m.network, mode, status).Observe(time.Since(started).Seconds())
}

// ObserveBatch records the outcome and duration of one catch-up batch.
func (m Sync) ObserveBatch(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncBatchDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// SetTipLag publishes the current tip-to-local height distance.
func (m Sync) SetTipLag(lag float64) {
	syncLag.WithLabelValues(m.network).Set(lag)
}
