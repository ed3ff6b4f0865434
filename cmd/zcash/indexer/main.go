package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kenbak/cipherscan-backend/internal/metrics"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/chain"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/indexer"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/model"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/privacy"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/repository/postgres"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/rpc"
	"github.com/Kenbak/cipherscan-backend/internal/zcash/sync"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	PostgresDSN   string        `long:"postgres-dsn" env:"ZCASH_INDEXER_POSTGRES_DSN" description:"Postgres DSN"`
	Network       model.Network `long:"network" env:"ZCASH_INDEXER_NETWORK" description:"network name" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"ZCASH_INDEXER_RPC_URL" description:"Zcash RPC URL" default:"http://127.0.0.1:8232"`
	RPCUser       string        `long:"rpc-user" env:"ZCASH_INDEXER_RPC_USER" description:"Zcash RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"ZCASH_INDEXER_RPC_PASSWORD" description:"Zcash RPC password"`
	RPCCookiePath string        `long:"rpc-cookie-path" env:"ZCASH_INDEXER_RPC_COOKIE_PATH" description:"path to the node auth cookie file"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"ZCASH_INDEXER_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	RPCRateLimit  int           `long:"rpc-rate-limit" env:"ZCASH_INDEXER_RPC_RATE_LIMIT" description:"max RPC requests per second, 0 disables the limit"`
	StartHeight   uint64        `long:"start-height" env:"ZCASH_INDEXER_START_HEIGHT" description:"first height to index on an empty database"`
	BatchSize     int           `long:"batch-size" env:"ZCASH_INDEXER_BATCH_SIZE" description:"catch-up block batch size"`
	TxWorkers     int           `long:"tx-workers" env:"ZCASH_INDEXER_TX_WORKERS" description:"per-block transaction fetch concurrency"`
	PollInterval  time.Duration `long:"poll-interval" env:"ZCASH_INDEXER_POLL_INTERVAL" description:"tip polling interval once caught up"`
	TxCacheSize   int           `long:"tx-cache-size" env:"ZCASH_INDEXER_TX_CACHE_SIZE" description:"transaction payload cache size" default:"10000"`
	MetricsAddr   string        `long:"metrics-addr" env:"ZCASH_INDEXER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.PostgresDSN == "" {
		logger.Fatal("Postgres DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("zcash indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := postgres.NewRepository(cfg.PostgresDSN, metrics.NewRepository(string(cfg.Network)))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	node := rpc.New(rpc.Config{
		URL:               cfg.RPCURL,
		User:              cfg.RPCUser,
		Password:          cfg.RPCPassword,
		CookiePath:        cfg.RPCCookiePath,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.RPCRateLimit,
	}, metrics.NewRPCClient(string(cfg.Network)), logger)

	tip, err := node.BlockCount(ctx)
	if err != nil {
		return fmt.Errorf("probe node: %w", err)
	}
	logger.Info("connected to node", zap.Uint64("tip", tip))

	source := chain.NewTxSource(node, cfg.TxCacheSize)
	txIndexer, err := indexer.New(source, logger)
	if err != nil {
		return fmt.Errorf("init transaction indexer: %w", err)
	}
	refresher, err := privacy.NewEngine(node, repo, logger)
	if err != nil {
		return fmt.Errorf("init privacy engine: %w", err)
	}
	engine, err := sync.NewEngine(
		sync.Config{
			StartHeight:   cfg.StartHeight,
			BatchSize:     cfg.BatchSize,
			TxWorkerCount: cfg.TxWorkers,
			PollInterval:  cfg.PollInterval,
		},
		node,
		source,
		txIndexer,
		repo,
		refresher,
		metrics.NewSync(string(cfg.Network)),
		logger,
	)
	if err != nil {
		return fmt.Errorf("init sync engine: %w", err)
	}

	// Days ingested before trend tracking existed may lack rows.
	if err := refresher.BackfillTrends(ctx); err != nil {
		logger.Warn("trend backfill failed, continuing", zap.Error(err))
	}

	return engine.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
