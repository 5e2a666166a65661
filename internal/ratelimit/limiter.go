package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

const (
	defaultKeyPrefix           = "ardhi:storage:limiter:"
	defaultMaxWait             = 2 * time.Minute
	defaultHealthCheckInterval = 10 * time.Second
	defaultFallbackMultiplier  = 0.5
	idleRetryInterval          = 100 * time.Millisecond
)

// ErrClosed is returned by Wait after Close
var ErrClosed = errors.New("rate limiter is closed")

// ProviderLimit bounds the request rate against one storage backend
type ProviderLimit struct {
	RequestsPerSecond int
	Burst             int
	// MaxWait is how long a caller may queue for a slot before giving up
	MaxWait time.Duration
}

// Config holds the rate limiter configuration
type Config struct {
	KeyPrefix               string
	EnableLocalFallback     bool
	LocalFallbackMultiplier float64
	HealthCheckInterval     time.Duration
	Providers               map[string]ProviderLimit
}

// Limiter hands out request slots per backend. The budget is shared through
// Redis across every process talking to the same account.
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Wait blocks until a request against provider may proceed. Providers
	// without a configured limit pass straight through.
	Wait(ctx context.Context, provider string) error

	// Close stops the health check and closes the Redis connection
	Close() error
}

type providerLimiter struct {
	name      string
	limit     ProviderLimit
	local     *rate.Limiter
	preFilter *rate.Limiter
}

type limiter struct {
	cfg       Config
	redis     adapter.RedisClient
	clock     adapter.Clock
	providers map[string]*providerLimiter

	redisAvailable atomic.Bool
	closed         atomic.Bool
	closeOnce      sync.Once
	stop           context.CancelFunc
	done           chan struct{}
}

// NewLimiter creates a rate limiter. rc may be nil, in which case every
// process limits itself locally.
func NewLimiter(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if rc == nil {
		cfg.EnableLocalFallback = true
	}

	l := &limiter{
		cfg:       cfg,
		redis:     rc,
		clock:     clock,
		providers: make(map[string]*providerLimiter, len(cfg.Providers)),
		done:      make(chan struct{}),
	}

	for name, limit := range cfg.Providers {
		// Minimum local rate of 1 rps
		localRate := max(float64(limit.RequestsPerSecond)*cfg.LocalFallbackMultiplier, 1.0)
		l.providers[name] = &providerLimiter{
			name:      name,
			limit:     limit,
			local:     rate.NewLimiter(rate.Limit(localRate), limit.Burst),
			preFilter: rate.NewLimiter(rate.Limit(limit.RequestsPerSecond), limit.Burst),
		}
	}

	if rc == nil {
		close(l.done)
		logger.Info("Storage rate limiter running without Redis", zap.Int("providers", len(l.providers)))
		return l, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		if !cfg.EnableLocalFallback {
			return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
		}
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	} else {
		l.redisAvailable.Store(true)
	}

	monitorCtx, stop := context.WithCancel(context.Background())
	l.stop = stop
	go l.monitorRedis(monitorCtx)

	logger.Info("Storage rate limiter initialized",
		zap.Int("providers", len(l.providers)),
		zap.Bool("redis", l.redisAvailable.Load()),
		zap.Bool("local_fallback", cfg.EnableLocalFallback))

	return l, nil
}

func (l *limiter) Wait(ctx context.Context, provider string) error {
	if l.closed.Load() {
		return ErrClosed
	}

	pl, ok := l.providers[provider]
	if !ok {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, pl.limit.MaxWait)
	defer cancel()

	if err := l.acquire(waitCtx, pl); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrRateLimited, provider, err)
	}
	return nil
}

// acquire blocks until a slot is available, preferring the shared Redis bucket
func (l *limiter) acquire(ctx context.Context, pl *providerLimiter) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if l.redis != nil && l.redisAvailable.Load() {
			allowed, retryAfter, err := l.tryShared(ctx, pl)
			switch {
			case err != nil:
				if ctx.Err() != nil {
					return ctx.Err()
				}

				l.redisAvailable.Store(false)
				if !l.cfg.EnableLocalFallback {
					return fmt.Errorf("redis rate limiter unavailable: %w", err)
				}
				logger.Warn("Redis rate limiter error, falling back to local",
					zap.String("provider", pl.name),
					zap.Error(err))
			case allowed:
				return nil
			default:
				if retryAfter <= 0 {
					retryAfter = idleRetryInterval
				}
				// 50-150% of retryAfter spreads out competing processes
				jitter := time.Duration(float64(retryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
				if err := l.clock.Sleep(ctx, jitter); err != nil {
					return err
				}
				continue
			}
		}

		if !l.cfg.EnableLocalFallback {
			if err := l.clock.Sleep(ctx, idleRetryInterval); err != nil {
				return err
			}
			continue
		}
		return pl.local.Wait(ctx)
	}
}

// tryShared takes a slot from the Redis bucket. The local pre-filter keeps a
// single process from hammering Redis.
func (l *limiter) tryShared(ctx context.Context, pl *providerLimiter) (bool, time.Duration, error) {
	if err := pl.preFilter.Wait(ctx); err != nil {
		return false, 0, err
	}

	res, err := l.redis.Allow(ctx, l.cfg.KeyPrefix+pl.name, redis_rate.Limit{
		Rate:   pl.limit.RequestsPerSecond,
		Burst:  pl.limit.Burst,
		Period: time.Second,
	})
	if err != nil {
		return false, 0, err
	}

	if res.Allowed == 0 {
		logger.Debug("Storage request slot unavailable, waiting",
			zap.String("provider", pl.name),
			zap.Duration("retry_after", res.RetryAfter),
			zap.Int("remaining", res.Remaining))
		return false, res.RetryAfter, nil
	}

	return true, 0, nil
}

// monitorRedis re-probes Redis so a recovered server is used again
func (l *limiter) monitorRedis(ctx context.Context) {
	defer close(l.done)

	for {
		if err := l.clock.Sleep(ctx, l.cfg.HealthCheckInterval); err != nil {
			return
		}

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := l.redis.Ping(pingCtx)
		cancel()

		wasAvailable := l.redisAvailable.Swap(err == nil)
		if !wasAvailable && err == nil {
			logger.Info("Redis connection restored")
		}
	}
}

func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		if l.stop != nil {
			l.stop()
		}
		<-l.done

		if l.redis != nil {
			if closeErr := l.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *Config) error {
	if len(cfg.Providers) == 0 {
		return errors.New("at least one provider must be configured")
	}

	providers := make(map[string]ProviderLimit, len(cfg.Providers))
	for name, limit := range cfg.Providers {
		if limit.RequestsPerSecond <= 0 {
			return fmt.Errorf("provider %s: requests_per_second must be positive", name)
		}
		if limit.Burst <= 0 {
			limit.Burst = limit.RequestsPerSecond
		}
		if limit.MaxWait <= 0 {
			limit.MaxWait = defaultMaxWait
		}
		providers[name] = limit
	}
	cfg.Providers = providers

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = defaultFallbackMultiplier
	}
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = defaultHealthCheckInterval
	}

	return nil
}
