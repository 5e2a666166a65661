package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// DefaultSignTimeout bounds how long the user has to approve a signing request
const DefaultSignTimeout = 2 * time.Minute

// Signer adapts a Wallet to the ledger signing boundary
type Signer struct {
	wallet  Wallet
	timeout time.Duration
}

// NewSigner creates a Signer. A non-positive timeout uses DefaultSignTimeout.
func NewSigner(w Wallet, timeout time.Duration) *Signer {
	if timeout <= 0 {
		timeout = DefaultSignTimeout
	}
	return &Signer{wallet: w, timeout: timeout}
}

// SignTransactions asks the wallet to sign txns as one group on behalf of identity
// and returns the signed transactions in order
func (s *Signer) SignTransactions(ctx context.Context, identity string, txns []types.Transaction) ([][]byte, error) {
	group := make([]SignRequest, 0, len(txns))
	for _, tx := range txns {
		group = append(group, SignRequest{
			Txn:     msgpack.Encode(tx),
			Signers: []string{identity},
		})
	}

	signCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	logger.InfoCtx(ctx, "Requesting wallet signature", zap.String("identity", identity), zap.Int("transactions", len(txns)))

	raw, err := s.wallet.SignTransactions(signCtx, [][]SignRequest{group})
	if err != nil {
		// The caller's own cancellation is not a wallet timeout
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("signing request abandoned: %w", ctxErr)
		}
		if errors.Is(signCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", domain.ErrWalletTimeout, err)
		}
		return nil, ClassifyError(err)
	}

	signed, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	if len(signed) == 0 {
		return nil, domain.ErrEmptySignature
	}
	if len(signed) != len(txns) {
		return nil, fmt.Errorf("%w: expected %d signed transactions, got %d", ErrMalformedResponse, len(txns), len(signed))
	}

	return signed, nil
}
