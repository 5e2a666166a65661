package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/api/middleware"
	"github.com/ardhichain/ardhi-registry/internal/api/server"
	"github.com/ardhichain/ardhi-registry/internal/api/shared/executor"
	"github.com/ardhichain/ardhi-registry/internal/config"
	"github.com/ardhichain/ardhi-registry/internal/downloader"
	"github.com/ardhichain/ardhi-registry/internal/ledger"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/messaging"
	"github.com/ardhichain/ardhi-registry/internal/migration"
	"github.com/ardhichain/ardhi-registry/internal/providers/jetstream"
	"github.com/ardhichain/ardhi-registry/internal/ratelimit"
	"github.com/ardhichain/ardhi-registry/internal/storage"
	"github.com/ardhichain/ardhi-registry/internal/store"
	"github.com/ardhichain/ardhi-registry/internal/verify"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ardhi-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Ardhi registry API")

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	httpClient := adapter.NewHTTPClient(cfg.Storage.Timeouts.Upload)

	// Storage provider
	factoryConfig, err := cfg.Storage.FactoryConfig()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid storage configuration", zap.Error(err))
	}
	var factoryOpts []storage.FactoryOption
	limiter, err := newStorageLimiter(cfg.Storage.RateLimit, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create storage rate limiter", zap.Error(err))
	}
	if limiter != nil {
		defer func() { _ = limiter.Close() }()
		factoryOpts = append(factoryOpts, storage.WithWaiter(limiter))
	}
	factory := storage.NewFactory(factoryConfig, httpClient, jsonAdapter, factoryOpts...)
	storage.Configure(factory)
	provider, err := storage.GetInstance()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create storage provider", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Storage provider ready", zap.String("provider", string(provider.Name())))

	// Ledger client (read-only)
	algod, err := adapter.NewAlgod(cfg.Algorand.AlgodURL, cfg.Algorand.AlgodToken)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create algod client", zap.Error(err))
	}
	indexer, err := adapter.NewIndexer(cfg.Algorand.IndexerURL, cfg.Algorand.IndexerToken)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create indexer client", zap.Error(err))
	}
	ledgerClient := ledger.NewClient(ledger.Config{
		AppID:          cfg.Algorand.AppID,
		ExplorerURL:    cfg.Algorand.ExplorerURL,
		WaitRounds:     cfg.Algorand.WaitRounds,
		VerifyAttempts: cfg.Algorand.VerifyAttempts,
		VerifyDelay:    cfg.Algorand.VerifyDelay,
	}, algod, indexer, nil, clock)
	defer ledgerClient.Close()
	if cfg.Algorand.AppID == 0 {
		logger.WarnCtx(ctx, "Registry application id not configured, contract listings are disabled")
	}

	resolver := verify.NewResolver(ledgerClient, provider)
	defer resolver.Close()

	// Optional database for migration history
	var dataStore store.Store
	if cfg.Database.Enabled() {
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
		}
		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, 0); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
		dataStore = store.NewPGStore(db)
		if err := dataStore.AutoMigrate(ctx); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate database schema", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to database", zap.Int("max_open_conns", cfg.Database.MaxOpenConns))
	} else {
		logger.WarnCtx(ctx, "Database not configured, migration history is disabled")
	}

	// Optional event publisher
	publisher := messaging.NewNoopPublisher()
	if cfg.NATS.Enabled() {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	dl := downloader.NewDownloader(adapter.NewHTTPClient(cfg.Storage.Timeouts.Fetch))
	migrators := func(source, target storage.ProviderType) (executor.Migrator, error) {
		src, err := factory.CreateExact(source)
		if err != nil {
			return nil, err
		}
		dst, err := factory.CreateExact(target)
		if err != nil {
			return nil, err
		}
		return migration.NewMigrator(src, dst, dl, jsonAdapter, jcsAdapter, clock,
			migration.WithDelay(cfg.Migration.Delay),
			migration.WithMaxSize(cfg.Migration.MaxSize)), nil
	}

	exec := executor.NewExecutor(executor.Deps{
		Storage:   provider,
		Verifier:  resolver,
		Titles:    ledgerClient,
		Migrators: migrators,
		Store:     dataStore,
		Publisher: publisher,
		Clock:     clock,
	})

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		JWTIssuer:    cfg.Auth.JWTIssuer,
		JWTAudience:  cfg.Auth.JWTAudience,
		APIKeys:      cfg.Auth.APIKeys,
	}, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to configure authentication", zap.Error(err))
	}

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, exec, auth)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}

// newStorageLimiter builds the storage request limiter. Requests are throttled
// per process unless a Redis address is configured.
func newStorageLimiter(cfg config.RateLimitConfig, clock adapter.Clock) (ratelimit.Limiter, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	var rc adapter.RedisClient
	if cfg.RedisAddr != "" {
		rc = adapter.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}
	return ratelimit.NewLimiter(cfg.LimiterConfig(), rc, clock)
}
