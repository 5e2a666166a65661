package storage

import (
	"context"

	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// Waiter blocks until a request against the named backend may proceed
type Waiter interface {
	Wait(ctx context.Context, provider string) error
}

// rateLimited gates every network call of a provider behind a Waiter.
// GetFileURL does no I/O and is never throttled.
type rateLimited struct {
	Provider
	waiter Waiter
}

// WithRateLimit wraps p so that its requests share the waiter's budget
func WithRateLimit(p Provider, w Waiter) Provider {
	if w == nil {
		return p
	}
	return &rateLimited{Provider: p, waiter: w}
}

func (r *rateLimited) wait(ctx context.Context) error {
	return r.waiter.Wait(ctx, string(r.Name()))
}

func (r *rateLimited) UploadFile(ctx context.Context, name string, data []byte) (string, error) {
	if err := r.wait(ctx); err != nil {
		return "", err
	}
	return r.Provider.UploadFile(ctx, name, data)
}

func (r *rateLimited) UploadJSON(ctx context.Context, name string, doc any) (string, error) {
	if err := r.wait(ctx); err != nil {
		return "", err
	}
	return r.Provider.UploadJSON(ctx, name, doc)
}

func (r *rateLimited) FetchJSON(ctx context.Context, cid string, out any) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	return r.Provider.FetchJSON(ctx, cid, out)
}

func (r *rateLimited) ValidateConnection(ctx context.Context) bool {
	if err := r.wait(ctx); err != nil {
		logger.WarnCtx(ctx, "Storage health check throttled",
			zap.String("provider", string(r.Name())),
			zap.Error(err))
		return false
	}
	return r.Provider.ValidateConnection(ctx)
}
