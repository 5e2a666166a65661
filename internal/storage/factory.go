package storage

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// Config holds the configuration of every backend plus the preferred one
type Config struct {
	Provider    ProviderType
	Pinata      PinataConfig
	Web3Storage Web3StorageConfig
	Timeouts    Timeouts
}

// Factory builds storage providers from configuration
type Factory struct {
	cfg        Config
	httpClient adapter.HTTPClient
	json       adapter.JSON
	waiter     Waiter
}

// FactoryOption customizes a Factory
type FactoryOption func(*Factory)

// WithWaiter throttles every provider the factory builds
func WithWaiter(w Waiter) FactoryOption {
	return func(f *Factory) {
		f.waiter = w
	}
}

// NewFactory creates a provider factory
func NewFactory(cfg Config, httpClient adapter.HTTPClient, json adapter.JSON, opts ...FactoryOption) *Factory {
	f := &Factory{
		cfg:        cfg,
		httpClient: httpClient,
		json:       json,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create builds the requested provider, falling back to the other backend when
// the requested one cannot be constructed. The fallback error is returned only
// when both fail.
func (f *Factory) Create(t ProviderType) (Provider, error) {
	parsed, ok := ParseProviderType(string(t))
	if !ok {
		logger.Warn("Unknown storage provider, using default",
			zap.String("requested", string(t)),
			zap.String("default", string(DefaultProviderType)))
	}
	t = parsed

	p, err := f.build(t)
	if err == nil {
		return p, nil
	}

	fallback := alternate(t)
	logger.Warn("Failed to create storage provider, falling back",
		zap.String("requested", string(t)),
		zap.String("fallback", string(fallback)),
		zap.Error(err))

	p, fallbackErr := f.build(fallback)
	if fallbackErr != nil {
		return nil, fmt.Errorf("failed to create fallback storage provider %s: %w", fallback, fallbackErr)
	}

	return p, nil
}

// CreateDefault builds the configured provider
func (f *Factory) CreateDefault() (Provider, error) {
	return f.Create(f.cfg.Provider)
}

// CreateExact builds the requested provider without falling back. Migrations
// need both ends to be the backends they name.
func (f *Factory) CreateExact(t ProviderType) (Provider, error) {
	parsed, ok := ParseProviderType(string(t))
	if !ok {
		return nil, misconfigured(t, "unknown storage provider")
	}
	return f.build(parsed)
}

func (f *Factory) build(t ProviderType) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch t {
	case ProviderWeb3Storage:
		p, err = NewWeb3Storage(f.cfg.Web3Storage, f.cfg.Timeouts, f.httpClient, f.json)
	default:
		p, err = NewPinata(f.cfg.Pinata, f.cfg.Timeouts, f.httpClient, f.json)
	}
	if err != nil {
		return nil, err
	}
	return WithRateLimit(p, f.waiter), nil
}

func alternate(t ProviderType) ProviderType {
	if t == ProviderWeb3Storage {
		return ProviderPinata
	}
	return ProviderWeb3Storage
}

var (
	instanceMu      sync.Mutex
	instanceFactory *Factory
	instance        Provider
)

// Configure sets the factory used by GetInstance and drops any cached instance
func Configure(f *Factory) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	instanceFactory = f
	instance = nil
}

// GetInstance returns the process-wide provider, creating it on first use
func GetInstance() (Provider, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		return instance, nil
	}
	if instanceFactory == nil {
		return nil, misconfigured(DefaultProviderType, "storage factory not configured")
	}

	p, err := instanceFactory.CreateDefault()
	if err != nil {
		return nil, err
	}
	instance = p

	return instance, nil
}

// ResetInstance drops the cached provider so the next GetInstance rebuilds it
func ResetInstance() {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	instance = nil
}
