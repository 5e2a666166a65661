package ledger

import (
	"bytes"
	"context"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/wallet"
)

// flatFeeParams returns suggested params with a fixed fee of fee microAlgos
func (c *Client) flatFeeParams(ctx context.Context, fee uint64) (types.SuggestedParams, error) {
	sp, err := c.algod.SuggestedParams(ctx)
	if err != nil {
		return types.SuggestedParams{}, fmt.Errorf("failed to get suggested params: %w", err)
	}
	sp.FlatFee = true
	sp.Fee = types.MicroAlgos(fee)
	return sp, nil
}

// sign asks the signer for the group and concatenates the signed transactions for submission
func (c *Client) sign(ctx context.Context, sender string, txns ...types.Transaction) ([]byte, error) {
	if err := c.requireSigner(); err != nil {
		return nil, err
	}

	signed, err := c.signer.SignTransactions(ctx, sender, txns)
	if err != nil {
		return nil, wallet.ClassifyError(err)
	}
	if len(signed) != len(txns) {
		return nil, fmt.Errorf("expected %d signed transactions, got %d", len(txns), len(signed))
	}

	return bytes.Join(signed, nil), nil
}

// submitAndConfirm sends signed bytes and waits for confirmation. The caller's
// cancellation no longer applies once a transaction has been signed.
func (c *Client) submitAndConfirm(ctx context.Context, txID string, signed []byte) (*adapter.ConfirmedTransaction, error) {
	ctx = context.WithoutCancel(ctx)

	sentID, err := c.algod.SendRawTransaction(ctx, signed)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}
	if sentID != "" {
		txID = sentID
	}

	logger.InfoCtx(ctx, "Transaction submitted", zap.String("txID", txID))

	confirmed, err := c.algod.WaitForConfirmation(ctx, txID, c.cfg.WaitRounds)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for confirmation: %w", err)
	}
	if confirmed.PoolError != "" {
		return nil, fmt.Errorf("transaction rejected by pool: %s", confirmed.PoolError)
	}
	if confirmed.TxID == "" {
		confirmed.TxID = txID
	}

	logger.InfoCtx(ctx, "Transaction confirmed", zap.String("txID", txID), zap.Uint64("round", confirmed.ConfirmedRound))

	return confirmed, nil
}

// execute signs, submits and confirms a single transaction, classifying any failure
func (c *Client) execute(ctx context.Context, op, sender string, adminOnly bool, tx types.Transaction) (*adapter.ConfirmedTransaction, error) {
	txID := crypto.GetTxID(tx)

	signed, err := c.sign(ctx, sender, tx)
	if err != nil {
		return nil, c.classifyError(op, sender, "", adminOnly, err)
	}

	confirmed, err := c.submitAndConfirm(ctx, txID, signed)
	if err != nil {
		return nil, c.classifyError(op, sender, txID, adminOnly, err)
	}

	return confirmed, nil
}
