package ledger

import (
	"context"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// TransferResult is the outcome of a confirmed transfer or opt-in
type TransferResult struct {
	TxID           string `json:"txId"`
	ConfirmedRound uint64 `json:"confirmedRound"`
}

// AdminTransferTitle moves a title held by the contract to receiver. Only the administrator may call it.
func (c *Client) AdminTransferTitle(ctx context.Context, sender string, assetID uint64, receiver string) (*TransferResult, error) {
	// outer call plus one inner transfer
	return c.transfer(ctx, "admin transfer", MethodAdminTransferTitle, 2*MinTxnFee, true, sender, assetID, receiver)
}

// UserTransferTitle moves a title from its current holder, the sender, to receiver
func (c *Client) UserTransferTitle(ctx context.Context, sender string, assetID uint64, receiver string) (*TransferResult, error) {
	// outer call plus clawback to the contract and transfer out
	return c.transfer(ctx, "user transfer", MethodUserTransferTitle, 3*MinTxnFee, false, sender, assetID, receiver)
}

func (c *Client) transfer(ctx context.Context, op, method string, fee uint64, adminOnly bool, sender string, assetID uint64, receiver string) (*TransferResult, error) {
	if err := c.requireApp(); err != nil {
		return nil, err
	}

	if err := c.checkReceiverOptedIn(ctx, assetID, receiver); err != nil {
		return nil, err
	}

	from, err := types.DecodeAddress(sender)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", sender, err)
	}

	args, err := transferArgs(method, assetID, receiver)
	if err != nil {
		return nil, err
	}

	sp, err := c.flatFeeParams(ctx, fee)
	if err != nil {
		return nil, err
	}

	tx, err := transaction.MakeApplicationNoOpTx(c.cfg.AppID, args, []string{receiver}, nil, []uint64{assetID}, sp, from, nil, types.Digest{}, [32]byte{}, types.Address{})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s call: %w", op, err)
	}

	confirmed, err := c.execute(ctx, op, sender, adminOnly, tx)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Title transferred",
		zap.String("op", op),
		zap.Uint64("assetID", assetID),
		zap.String("from", sender),
		zap.String("to", receiver),
		zap.String("txID", confirmed.TxID))

	return &TransferResult{TxID: confirmed.TxID, ConfirmedRound: confirmed.ConfirmedRound}, nil
}

// checkReceiverOptedIn fails early when the receiver cannot hold the asset.
// A failed lookup is left for the contract to decide.
func (c *Client) checkReceiverOptedIn(ctx context.Context, assetID uint64, receiver string) error {
	account, err := c.GetAccount(ctx, receiver)
	if err != nil {
		logger.WarnCtx(ctx, "Could not check receiver opt-in", zap.String("receiver", receiver), zap.Error(err))
		return nil
	}
	if !account.OptedIn(assetID) {
		return fmt.Errorf("%w: %s has not opted in to asset %d", domain.ErrReceiverNotOptedIn, receiver, assetID)
	}
	return nil
}

// OptInAsset registers sender to hold assetID with a zero amount transfer to itself
func (c *Client) OptInAsset(ctx context.Context, sender string, assetID uint64) (*TransferResult, error) {
	account, err := c.GetAccount(ctx, sender)
	if err != nil {
		return nil, err
	}
	if account.OptedIn(assetID) {
		return &TransferResult{}, nil
	}

	required := max(account.MinBalance, BaseMinBalance) + AssetMinBalance + MinTxnFee
	if account.Amount < required {
		return nil, domain.NewInsufficientFundsError(domain.PartyCaller, sender, account.Amount, required)
	}

	sp, err := c.flatFeeParams(ctx, MinTxnFee)
	if err != nil {
		return nil, err
	}

	tx, err := transaction.MakeAssetAcceptanceTxn(sender, nil, sp, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to build opt-in: %w", err)
	}

	confirmed, err := c.execute(ctx, "opt-in", sender, false, tx)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Opted in to title", zap.Uint64("assetID", assetID), zap.String("account", sender))

	return &TransferResult{TxID: confirmed.TxID, ConfirmedRound: confirmed.ConfirmedRound}, nil
}
