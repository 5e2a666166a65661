package ledger

import (
	"context"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// CreateTitleStatus tells whether a created title is already visible on the indexer
type CreateTitleStatus string

const (
	StatusVerified            CreateTitleStatus = "verified"
	StatusPendingVerification CreateTitleStatus = "pending_verification"
)

// CreateTitleResult is the outcome of a successful create_title call
type CreateTitleResult struct {
	AssetID        uint64            `json:"assetId"`
	TxID           string            `json:"txId"`
	ConfirmedRound uint64            `json:"confirmedRound"`
	FundingTxID    string            `json:"fundingTxId,omitempty"`
	Status         CreateTitleStatus `json:"status"`
}

// CallerRequirement is the balance the caller needs for a create_title call given its current minimum balance
func CallerRequirement(accountMinBalance uint64) uint64 {
	return max(accountMinBalance, BaseMinBalance) + MinTxnFee + MinTxnFee + FundingReserve
}

// ContractRequirement is the balance the application account needs before minting one more asset
func ContractRequirement(heldAssets int) uint64 {
	return BaseMinBalance + AssetMinBalance*uint64(heldAssets+1) + 3*MinTxnFee //nolint:gosec,G115
}

type createTitleStep struct {
	name string
	run  func(ctx context.Context) error
}

// createTitleRun carries the state of one create_title protocol run between steps
type createTitleRun struct {
	client      *Client
	sender      string
	landID      string
	metadataURL string

	appAddress string
	tx         types.Transaction
	txID       string
	signed     []byte
	confirmed  *adapter.ConfirmedTransaction
	result     CreateTitleResult
}

// CreateTitle mints a land title through the registry contract.
// The steps run strictly in order; the first failure ends the run.
func (c *Client) CreateTitle(ctx context.Context, sender, landID, metadataURL string) (*CreateTitleResult, error) {
	if err := c.requireApp(); err != nil {
		return nil, err
	}

	run := &createTitleRun{
		client:      c,
		sender:      sender,
		landID:      landID,
		metadataURL: metadataURL,
		appAddress:  c.ApplicationAddress(),
	}

	steps := []createTitleStep{
		{"balance_check", run.checkCallerBalance},
		{"contract_funding", run.ensureContractFunded},
		{"authorization", run.authorize},
		{"build", run.build},
		{"sign", run.sign},
		{"submit", run.submit},
		{"extract", run.extract},
		{"verify", run.verify},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			logger.WarnCtx(ctx, "Create title step failed",
				zap.String("step", step.name),
				zap.String("landID", landID),
				zap.String("sender", sender),
				zap.Error(err))
			return nil, err
		}
		logger.DebugCtx(ctx, "Create title step done", zap.String("step", step.name), zap.String("landID", landID))
	}

	return &run.result, nil
}

func (r *createTitleRun) checkCallerBalance(ctx context.Context) error {
	account, err := r.client.GetAccount(ctx, r.sender)
	if err != nil {
		return err
	}

	required := CallerRequirement(account.MinBalance)
	if account.Amount < required {
		return domain.NewInsufficientFundsError(domain.PartyCaller, r.sender, account.Amount, required)
	}
	return nil
}

func (r *createTitleRun) ensureContractFunded(ctx context.Context) error {
	c := r.client

	contract, err := c.GetAccount(ctx, r.appAddress)
	if err != nil {
		return err
	}

	required := ContractRequirement(len(contract.Assets))
	if contract.Amount >= required {
		return nil
	}
	shortfall := required - contract.Amount

	logger.InfoCtx(ctx, "Funding registry contract",
		zap.String("contract", r.appAddress),
		zap.Uint64("balance", contract.Amount),
		zap.Uint64("required", required),
		zap.Uint64("amount", shortfall))

	sp, err := c.flatFeeParams(ctx, MinTxnFee)
	if err != nil {
		return err
	}
	payment, err := transaction.MakePaymentTxn(r.sender, r.appAddress, shortfall, nil, "", sp)
	if err != nil {
		return fmt.Errorf("failed to build funding payment: %w", err)
	}

	confirmed, err := c.execute(ctx, "contract funding", r.sender, false, payment)
	if err != nil {
		return err
	}
	r.result.FundingTxID = confirmed.TxID

	funded, err := c.GetAccount(context.WithoutCancel(ctx), r.appAddress)
	if err != nil {
		return err
	}
	if funded.Amount < required {
		return fmt.Errorf("%w: %v", domain.ErrContractUnderfunded,
			domain.NewInsufficientFundsError(domain.PartyContract, r.appAddress, funded.Amount, required))
	}
	return nil
}

func (r *createTitleRun) authorize(ctx context.Context) error {
	admin, err := r.client.GetAdminAddress(ctx)
	if err != nil {
		return err
	}
	if admin != r.sender {
		return &domain.AuthorizationError{
			Address:  r.sender,
			Expected: admin,
			Reason:   "only the registry administrator can create titles",
		}
	}
	return nil
}

func (r *createTitleRun) build(ctx context.Context) error {
	c := r.client

	sender, err := types.DecodeAddress(r.sender)
	if err != nil {
		return fmt.Errorf("invalid sender address %q: %w", r.sender, err)
	}

	args, err := createTitleArgs(r.landID, r.metadataURL)
	if err != nil {
		return err
	}

	// the outer fee pools the fees of the two inner transactions
	sp, err := c.flatFeeParams(ctx, 3*MinTxnFee)
	if err != nil {
		return err
	}

	tx, err := transaction.MakeApplicationNoOpTx(c.cfg.AppID, args, nil, nil, nil, sp, sender, nil, types.Digest{}, [32]byte{}, types.Address{})
	if err != nil {
		return fmt.Errorf("failed to build create_title call: %w", err)
	}

	r.tx = tx
	r.txID = crypto.GetTxID(tx)
	return nil
}

func (r *createTitleRun) sign(ctx context.Context) error {
	signed, err := r.client.sign(ctx, r.sender, r.tx)
	if err != nil {
		return r.client.classifyError("create title", r.sender, "", true, err)
	}
	r.signed = signed
	return nil
}

func (r *createTitleRun) submit(ctx context.Context) error {
	confirmed, err := r.client.submitAndConfirm(ctx, r.txID, r.signed)
	if err != nil {
		return r.client.classifyError("create title", r.sender, r.txID, true, err)
	}

	r.confirmed = confirmed
	r.result.TxID = confirmed.TxID
	r.result.ConfirmedRound = confirmed.ConfirmedRound
	return nil
}

func (r *createTitleRun) extract(ctx context.Context) error {
	assetID, err := extractCreatedAssetID(r.confirmed)
	if err != nil {
		return &domain.TransactionError{
			Op:          "create title",
			TxID:        r.result.TxID,
			ExplorerURL: r.client.ExplorerTxURL(r.result.TxID),
			Err:         err,
		}
	}

	r.result.AssetID = assetID
	logger.InfoCtx(ctx, "Title created", zap.Uint64("assetID", assetID), zap.String("landID", r.landID), zap.String("txID", r.result.TxID))
	return nil
}

// verify waits for the indexer to show the new asset. Lag is not an error.
func (r *createTitleRun) verify(ctx context.Context) error {
	c := r.client
	ctx = context.WithoutCancel(ctx)

	r.result.Status = StatusPendingVerification
	for attempt := 1; attempt <= c.cfg.VerifyAttempts; attempt++ {
		asset, ok := c.GetAssetInfo(ctx, r.result.AssetID)
		if ok && asset.Name == r.landID && asset.URL == r.metadataURL {
			if !asset.IsNFT() {
				logger.WarnCtx(ctx, "Created title is not a single indivisible unit",
					zap.Uint64("assetID", asset.Index), zap.Uint64("total", asset.Total), zap.Uint64("decimals", asset.Decimals))
			}
			r.result.Status = StatusVerified
			return nil
		}

		if attempt < c.cfg.VerifyAttempts {
			if err := c.clock.Sleep(ctx, c.cfg.VerifyDelay); err != nil {
				break
			}
		}
	}

	logger.WarnCtx(ctx, "Created title not yet visible on the indexer",
		zap.Uint64("assetID", r.result.AssetID),
		zap.Int("attempts", c.cfg.VerifyAttempts))
	return nil
}
