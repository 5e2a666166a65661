package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/config"
	"github.com/ardhichain/ardhi-registry/internal/ledger"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/messaging"
	"github.com/ardhichain/ardhi-registry/internal/providers/jetstream"
	"github.com/ardhichain/ardhi-registry/internal/ratelimit"
	"github.com/ardhichain/ardhi-registry/internal/session"
	"github.com/ardhichain/ardhi-registry/internal/storage"
	"github.com/ardhichain/ardhi-registry/internal/titles"
	"github.com/ardhichain/ardhi-registry/internal/verify"
	"github.com/ardhichain/ardhi-registry/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

const usage = `usage: titlectl [-config file] [-env dir] <command> [flags]

commands:
  create    -land-id ID -location L -area A -municipality M -document FILE [-owner ADDRESS]
  transfer  -asset ID -to ADDRESS
  opt-in    -asset ID
  verify    -asset ID
  whoami
`

// app holds the collaborators shared by the subcommands
type app struct {
	cfg       *config.TitleCtlConfig
	fs        adapter.FileSystem
	json      adapter.JSON
	clock     adapter.Clock
	ledger    *ledger.Client
	storage   storage.Provider
	publisher messaging.Publisher
	session   *session.Session
	limiter   ratelimit.Limiter
}

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	command, args := flag.Arg(0), flag.Args()[1:]

	config.ChdirRepoRoot()
	cfg, err := config.LoadTitleCtlConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ardhi-titlectl",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, command != "verify")
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize", zap.Error(err))
	}
	defer a.close()

	var out any
	switch command {
	case "create":
		out, err = a.create(ctx, args)
	case "transfer":
		out, err = a.transfer(ctx, args)
	case "opt-in":
		out, err = a.optIn(ctx, args)
	case "verify":
		out, err = a.verify(ctx, args)
	case "whoami":
		out, err = a.whoami(ctx)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("command", command))
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}

	body, err := a.json.MarshalIndent(out)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to encode output", zap.Error(err))
	}
	fmt.Println(string(body))
}

func newApp(ctx context.Context, cfg *config.TitleCtlConfig, needsWallet bool) (*app, error) {
	a := &app{
		cfg:       cfg,
		fs:        adapter.NewFileSystem(),
		json:      adapter.NewJSON(),
		clock:     adapter.NewClock(),
		publisher: messaging.NewNoopPublisher(),
	}

	factoryConfig, err := cfg.Storage.FactoryConfig()
	if err != nil {
		return nil, err
	}
	var factoryOpts []storage.FactoryOption
	a.limiter, err = newStorageLimiter(cfg.Storage.RateLimit, a.clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage rate limiter: %w", err)
	}
	if a.limiter != nil {
		factoryOpts = append(factoryOpts, storage.WithWaiter(a.limiter))
	}
	storage.Configure(storage.NewFactory(factoryConfig, adapter.NewHTTPClient(cfg.Storage.Timeouts.Upload), a.json, factoryOpts...))
	a.storage, err = storage.GetInstance()
	if err != nil {
		return nil, fmt.Errorf("failed to create storage provider: %w", err)
	}

	algod, err := adapter.NewAlgod(cfg.Algorand.AlgodURL, cfg.Algorand.AlgodToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create algod client: %w", err)
	}
	indexer, err := adapter.NewIndexer(cfg.Algorand.IndexerURL, cfg.Algorand.IndexerToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer client: %w", err)
	}

	var signer ledger.Signer
	if needsWallet {
		if err := cfg.Wallet.Validate(); err != nil {
			return nil, err
		}
		w, err := newWallet(cfg.Wallet, a.json)
		if err != nil {
			return nil, err
		}
		signer = wallet.NewSigner(w, cfg.Wallet.SignTimeout)
		a.session = session.New(w, cfg.Algorand.AdminAddress)
	}

	a.ledger = ledger.NewClient(ledger.Config{
		AppID:          cfg.Algorand.AppID,
		ExplorerURL:    cfg.Algorand.ExplorerURL,
		WaitRounds:     cfg.Algorand.WaitRounds,
		VerifyAttempts: cfg.Algorand.VerifyAttempts,
		VerifyDelay:    cfg.Algorand.VerifyDelay,
	}, algod, indexer, signer, a.clock)

	if a.session != nil && cfg.Algorand.AdminAddress == "" {
		admin, err := a.ledger.GetAdminAddress(ctx)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to read admin address from the registry application", zap.Error(err))
		} else {
			a.session.SetAdminAddress(admin)
		}
	}

	if cfg.NATS.Enabled() {
		publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), a.json)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to connect to NATS, events disabled", zap.Error(err))
		} else {
			a.publisher = publisher
		}
	}

	return a, nil
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

func newWallet(cfg config.WalletConfig, jsonAdapter adapter.JSON) (wallet.Wallet, error) {
	switch cfg.Mode {
	case config.WalletModeBridge:
		return wallet.NewBridgeWallet(wallet.BridgeConfig{URL: cfg.BridgeURL},
			adapter.NewHTTPClient(cfg.SignTimeout), jsonAdapter, adapter.NewBase64())
	default:
		return wallet.NewMnemonicWallet(cfg.Mnemonic)
	}
}

func (a *app) close() {
	if a.session != nil {
		a.session.Disconnect()
	}
	if a.ledger != nil {
		a.ledger.Close()
	}
	a.publisher.Close()
	if a.limiter != nil {
		_ = a.limiter.Close()
	}
}

// connect opens the session and returns the title service bound to it
func (a *app) connect(ctx context.Context) (*titles.Service, error) {
	identity, err := a.session.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect wallet: %w", err)
	}
	logger.InfoCtx(ctx, "Wallet connected",
		zap.String("identity", identity),
		zap.Bool("admin", a.session.IsAdmin()))

	return titles.NewService(a.session, a.ledger, a.storage, a.publisher, a.clock), nil
}

func (a *app) create(ctx context.Context, args []string) (any, error) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	landID := fs.String("land-id", "", "Land identifier, e.g. NRB/BLOCK-12/345")
	location := fs.String("location", "", "Location description")
	area := fs.String("area", "", "Parcel area")
	municipality := fs.String("municipality", "", "Municipality")
	document := fs.String("document", "", "Path to the title document")
	owner := fs.String("owner", "", "Initial owner address; the title stays in contract custody when empty")
	_ = fs.Parse(args)

	if *document == "" {
		return nil, fmt.Errorf("-document is required")
	}
	content, err := a.fs.ReadFile(*document)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	svc, err := a.connect(ctx)
	if err != nil {
		return nil, err
	}

	return svc.Register(ctx, titles.RegisterRequest{
		LandID:       *landID,
		Location:     *location,
		Area:         *area,
		Municipality: *municipality,
		DocumentName: filepath.Base(*document),
		Document:     content,
		InitialOwner: *owner,
	})
}

func (a *app) transfer(ctx context.Context, args []string) (any, error) {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	asset := fs.String("asset", "", "Title asset id")
	to := fs.String("to", "", "Receiver address")
	_ = fs.Parse(args)

	assetID, err := parseAssetID(*asset)
	if err != nil {
		return nil, err
	}

	svc, err := a.connect(ctx)
	if err != nil {
		return nil, err
	}

	return svc.Transfer(ctx, assetID, *to)
}

func (a *app) optIn(ctx context.Context, args []string) (any, error) {
	fs := flag.NewFlagSet("opt-in", flag.ExitOnError)
	asset := fs.String("asset", "", "Title asset id")
	_ = fs.Parse(args)

	assetID, err := parseAssetID(*asset)
	if err != nil {
		return nil, err
	}

	svc, err := a.connect(ctx)
	if err != nil {
		return nil, err
	}

	return svc.OptIn(ctx, assetID)
}

func (a *app) verify(ctx context.Context, args []string) (any, error) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	asset := fs.String("asset", "", "Title asset id")
	_ = fs.Parse(args)

	assetID, err := parseAssetID(*asset)
	if err != nil {
		return nil, err
	}

	resolver := verify.NewResolver(a.ledger, a.storage)
	defer resolver.Close()

	return resolver.Verify(ctx, assetID)
}

func (a *app) whoami(ctx context.Context) (any, error) {
	if _, err := a.session.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect wallet: %w", err)
	}
	return a.session.Snapshot(), nil
}

func parseAssetID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("-asset must be a positive integer, got %q", raw)
	}
	return id, nil
}
