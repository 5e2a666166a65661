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
	"github.com/ardhichain/ardhi-registry/internal/config"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/downloader"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/messaging"
	"github.com/ardhichain/ardhi-registry/internal/migration"
	"github.com/ardhichain/ardhi-registry/internal/providers/jetstream"
	"github.com/ardhichain/ardhi-registry/internal/ratelimit"
	"github.com/ardhichain/ardhi-registry/internal/storage"
	"github.com/ardhichain/ardhi-registry/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	cidsFile   = flag.String("cids", "", "Path to a file with one CID per line (required)")
	source     = flag.String("source", "", "Source provider (pinata, web3storage); defaults to migration.source")
	target     = flag.String("target", "", "Target provider (pinata, web3storage); defaults to migration.target")
	validate   = flag.Bool("validate", false, "Compare migrated content with the source after copying")
	persist    = flag.Bool("persist", false, "Save the report to the database")
	output     = flag.String("output", "", "Write the JSON report to this file instead of stdout")
)

type result struct {
	*domain.MigrationReport
	Validation *domain.ValidationReport `json:"validation,omitempty"`
}

func main() {
	flag.Parse()
	if *cidsFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	config.ChdirRepoRoot()
	cfg, err := config.LoadMigrateConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ardhi-migrate",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	fs := adapter.NewFileSystem()
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	data, err := fs.ReadFile(*cidsFile)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to read CID list", zap.String("path", *cidsFile), zap.Error(err))
	}
	cids := migration.ParseCIDList(data)
	if len(cids) == 0 {
		logger.FatalCtx(ctx, "CID list is empty", zap.String("path", *cidsFile))
	}

	sourceType, targetType := resolveProviders(ctx, cfg)

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
	factory := storage.NewFactory(factoryConfig, adapter.NewHTTPClient(cfg.Storage.Timeouts.Upload), jsonAdapter, factoryOpts...)
	src, err := factory.CreateExact(sourceType)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create source provider", zap.Error(err))
	}
	dst, err := factory.CreateExact(targetType)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create target provider", zap.Error(err))
	}

	migrator := migration.NewMigrator(src, dst,
		downloader.NewDownloader(adapter.NewHTTPClient(cfg.Storage.Timeouts.Fetch)),
		jsonAdapter, adapter.NewJCS(), clock,
		migration.WithDelay(cfg.Migration.Delay),
		migration.WithMaxSize(cfg.Migration.MaxSize))

	logger.InfoCtx(ctx, "Starting migration",
		zap.String("source", string(sourceType)),
		zap.String("target", string(targetType)),
		zap.Int("items", len(cids)))

	res := result{MigrationReport: migrator.MigrateAllContent(ctx, cids)}
	if *validate {
		res.Validation = migrator.ValidateMigration(ctx, res.Mappings())
	}

	if *persist {
		persistReport(ctx, cfg.Database, res)
	}
	publishReport(ctx, cfg.NATS, jsonAdapter, res.MigrationReport, clock.Now())

	body, err := jsonAdapter.MarshalIndent(res)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to encode report", zap.Error(err))
	}
	if *output != "" {
		if err := fs.WriteFile(*output, body); err != nil {
			logger.FatalCtx(ctx, "Failed to write report", zap.String("path", *output), zap.Error(err))
		}
	} else {
		fmt.Println(string(body))
	}

	logger.InfoCtx(ctx, "Migration finished",
		zap.String("runId", res.ID),
		zap.Int("success", res.SuccessCount),
		zap.Int("failed", res.FailureCount))

	if res.FailureCount > 0 || (res.Validation != nil && res.Validation.InvalidCount > 0) {
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func resolveProviders(ctx context.Context, cfg *config.MigrateConfig) (storage.ProviderType, storage.ProviderType) {
	sourceName, targetName := cfg.Migration.Source, cfg.Migration.Target
	if *source != "" {
		sourceName = *source
	}
	if *target != "" {
		targetName = *target
	}

	sourceType, ok := storage.ParseProviderType(sourceName)
	if !ok {
		logger.FatalCtx(ctx, "Unknown source provider", zap.String("source", sourceName))
	}
	targetType, ok := storage.ParseProviderType(targetName)
	if !ok {
		logger.FatalCtx(ctx, "Unknown target provider", zap.String("target", targetName))
	}
	if sourceType == targetType {
		logger.FatalCtx(ctx, "Source and target providers must differ", zap.String("provider", string(sourceType)))
	}

	return sourceType, targetType
}

func persistReport(ctx context.Context, dbCfg config.DatabaseConfig, res result) {
	if !dbCfg.Enabled() {
		logger.FatalCtx(ctx, "Database not configured, cannot persist report")
	}

	db, err := gorm.Open(postgres.Open(dbCfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", dbCfg.Host))
	}
	dataStore := store.NewPGStore(db)
	if err := dataStore.AutoMigrate(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database schema", zap.Error(err))
	}

	if err := dataStore.SaveMigrationReport(ctx, res.MigrationReport); err != nil {
		logger.FatalCtx(ctx, "Failed to save migration report", zap.Error(err))
	}
	if res.Validation != nil {
		if err := dataStore.SaveValidationReport(ctx, res.ID, res.Validation); err != nil {
			logger.FatalCtx(ctx, "Failed to save validation report", zap.Error(err))
		}
	}
	logger.InfoCtx(ctx, "Saved migration report", zap.String("runId", res.ID))
}

func publishReport(ctx context.Context, natsCfg config.NATSConfig, jsonAdapter adapter.JSON, report *domain.MigrationReport, now time.Time) {
	if !natsCfg.Enabled() {
		return
	}

	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            natsCfg.URL,
		StreamName:     natsCfg.StreamName,
		MaxReconnects:  natsCfg.MaxReconnects,
		ReconnectWait:  natsCfg.ReconnectWait,
		ConnectionName: natsCfg.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to connect to NATS, event not published", zap.Error(err))
		return
	}
	defer publisher.Close()

	if err := publisher.Publish(ctx, messaging.NewMigrationCompletedEvent(report, now)); err != nil {
		logger.WarnCtx(ctx, "Failed to publish migration event", zap.String("runId", report.ID), zap.Error(err))
	}
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
