package storage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// fetchJSON reads a document from a public gateway URL
func fetchJSON(ctx context.Context, provider ProviderType, httpClient adapter.HTTPClient, json adapter.JSON, timeout time.Duration, url string, out any) error {
	const op = "fetch_json"

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := httpClient.GetBytes(ctx, url, nil)
	if err != nil {
		return wrapError(provider, op, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return invalidFormat(provider, op, fmt.Errorf("failed to decode %s: %w", url, err))
	}

	return nil
}

// probe performs an authenticated GET and reports whether it succeeded
func probe(ctx context.Context, provider ProviderType, httpClient adapter.HTTPClient, timeout time.Duration, url string, headers map[string]string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.WarnCtx(ctx, "Storage health probe panicked", zap.String("provider", string(provider)), zap.Any("panic", r))
			ok = false
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := httpClient.GetBytes(ctx, url, headers); err != nil {
		logger.WarnCtx(ctx, "Storage health probe failed", zap.String("provider", string(provider)), zap.Error(err))
		return false
	}

	return true
}
