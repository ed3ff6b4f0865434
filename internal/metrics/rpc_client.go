package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cipherscan",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of Zcash node RPC operations.",
	}, []string{"method", "network", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cipherscan",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Zcash node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "network", "status"})
)

// RPCClient tracks metrics for RPC calls to the Zcash node.
type RPCClient struct {
	network string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(network string) *RPCClient {
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{network: network}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(method string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(method, m.network, status).Inc()
	rpcRequestDuration.WithLabelValues(method, m.network, status).Observe(time.Since(started).Seconds())
}
