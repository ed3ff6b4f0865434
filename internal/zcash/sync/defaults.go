package sync

import "time"

const (
	// ModeCatchup labels heights indexed while draining historical backlog.
	ModeCatchup = "catchup"
	// ModeLive labels heights indexed while following the tip.
	ModeLive = "live"

	defaultBatchSize          = 30
	defaultTxWorkerCount      = 20
	defaultPollInterval       = 10 * time.Second
	defaultRefreshEveryBlocks = 100
	defaultRefreshInterval    = time.Hour
	errorBackoff              = 5 * time.Second
)
