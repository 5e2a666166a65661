package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// GetAccountAssets returns the holdings of an address; unknown addresses have none
func (c *Client) GetAccountAssets(ctx context.Context, address string) []domain.AssetHolding {
	holdings, err := c.indexer.LookupAccountAssets(ctx, address)
	if err != nil {
		logRead(ctx, "account assets", err, zap.String("address", address))
		return []domain.AssetHolding{}
	}
	return holdings
}

// GetAssetInfo returns the asset parameters in a single attempt.
// The flag is false when the asset is unknown or the indexer failed.
func (c *Client) GetAssetInfo(ctx context.Context, assetID uint64) (*domain.Asset, bool) {
	asset, err := c.lookupAsset(ctx, assetID)
	if err != nil {
		logRead(ctx, "asset info", err, zap.Uint64("assetID", assetID))
		return nil, false
	}
	return asset, true
}

// GetAssetInfoWithRetry retries transient indexer failures with a fixed delay
// to tolerate indexer lag right after a write. Unknown assets are not retried.
func (c *Client) GetAssetInfoWithRetry(ctx context.Context, assetID uint64) (*domain.Asset, bool) {
	var asset *domain.Asset

	operation := func() error {
		a, err := c.lookupAsset(ctx, assetID)
		if err != nil {
			if errors.Is(err, domain.ErrAssetNotFound) {
				return backoff.Permanent(err)
			}
			return err
		}
		asset = a
		return nil
	}

	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(c.cfg.AssetInfoDelay), uint64(c.cfg.AssetInfoAttempts-1)) //nolint:gosec,G115
	notify := func(err error, wait time.Duration) {
		logger.DebugCtx(ctx, "Retrying asset lookup", zap.Uint64("assetID", assetID), zap.Duration("wait", wait), zap.Error(err))
	}
	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		logRead(ctx, "asset info", err, zap.Uint64("assetID", assetID))
		return nil, false
	}

	return asset, true
}

func (c *Client) lookupAsset(ctx context.Context, assetID uint64) (*domain.Asset, error) {
	asset, err := c.indexer.LookupAsset(ctx, assetID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", domain.ErrAssetNotFound, assetID)
		}
		return nil, err
	}
	if asset == nil || asset.Deleted {
		return nil, fmt.Errorf("%w: %d", domain.ErrAssetNotFound, assetID)
	}
	return asset, nil
}

// GetAssetTransactions returns the asset's transaction history
func (c *Client) GetAssetTransactions(ctx context.Context, assetID uint64) []domain.LedgerTransaction {
	txs, err := c.indexer.LookupAssetTransactions(ctx, assetID)
	if err != nil {
		logRead(ctx, "asset transactions", err, zap.Uint64("assetID", assetID))
		return []domain.LedgerTransaction{}
	}
	return txs
}

// SearchAssetsByUnitName returns the assets carrying unit as their unit name
func (c *Client) SearchAssetsByUnitName(ctx context.Context, unit string) []domain.Asset {
	assets, err := c.indexer.SearchAssetsByUnitName(ctx, unit)
	if err != nil {
		logRead(ctx, "asset search", err, zap.String("unit", unit))
		return []domain.Asset{}
	}
	return assets
}

// GetContractAssets returns the assets held by an application's escrow account, ordered by id
func (c *Client) GetContractAssets(ctx context.Context, appID uint64) []domain.Asset {
	holdings := c.GetAccountAssets(ctx, ApplicationAddress(appID))
	if len(holdings) == 0 {
		return []domain.Asset{}
	}

	tasks := make([]pond.Result[*domain.Asset], 0, len(holdings))
	for _, h := range holdings {
		assetID := h.AssetID
		tasks = append(tasks, c.pool.SubmitErr(func() (*domain.Asset, error) {
			return c.lookupAsset(ctx, assetID)
		}))
	}

	assets := make([]domain.Asset, 0, len(tasks))
	for _, task := range tasks {
		asset, err := task.Wait()
		if err != nil {
			logRead(ctx, "contract asset", err)
			continue
		}
		assets = append(assets, *asset)
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Index < assets[j].Index })
	return assets
}

// GetAccount returns balance and holdings from the node. Unused addresses yield an empty account.
func (c *Client) GetAccount(ctx context.Context, address string) (*domain.Account, error) {
	account, err := c.algod.AccountInformation(ctx, address)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return &domain.Account{Address: address}, nil
		}
		return nil, fmt.Errorf("failed to read account %s: %w", address, err)
	}
	return account, nil
}

// GetAdminAddress reads the administrator address from the registry application's global state
func (c *Client) GetAdminAddress(ctx context.Context) (string, error) {
	if err := c.requireApp(); err != nil {
		return "", err
	}

	state, err := c.algod.ApplicationGlobalState(ctx, c.cfg.AppID)
	if err != nil {
		return "", fmt.Errorf("failed to read application %d global state: %w", c.cfg.AppID, err)
	}

	value, ok := state[domain.CONTRACT_ADMIN_GLOBAL_STATE_KEY]
	if !ok || len(value.Bytes) == 0 {
		return "", domain.ErrAdminNotConfigured
	}
	if len(value.Bytes) != len(types.Address{}) {
		return "", fmt.Errorf("%w: admin value has %d bytes", domain.ErrAdminNotConfigured, len(value.Bytes))
	}

	address, err := types.EncodeAddress(value.Bytes)
	if err != nil {
		return "", fmt.Errorf("failed to encode admin address: %w", err)
	}
	return address, nil
}

// logRead logs a failed read; unknown resources are expected and logged at debug level
func logRead(ctx context.Context, what string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if errors.Is(err, adapter.ErrNotFound) || errors.Is(err, domain.ErrAssetNotFound) {
		logger.DebugCtx(ctx, "Ledger "+what+" not found", fields...)
		return
	}
	logger.WarnCtx(ctx, "Failed to read ledger "+what, fields...)
}
