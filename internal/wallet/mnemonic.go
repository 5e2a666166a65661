package wallet

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

// MnemonicWallet signs locally with a key recovered from a 25-word mnemonic.
// Intended for operator tooling and test networks.
type MnemonicWallet struct {
	key     ed25519.PrivateKey
	address string
	closed  chan struct{}
}

// NewMnemonicWallet recovers the account behind phrase
func NewMnemonicWallet(phrase string) (*MnemonicWallet, error) {
	sk, err := mnemonic.ToPrivateKey(strings.Join(strings.Fields(phrase), " "))
	if err != nil {
		return nil, fmt.Errorf("failed to recover key from mnemonic: %w", err)
	}

	account, err := crypto.AccountFromPrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("failed to derive account: %w", err)
	}

	return &MnemonicWallet{
		key:     sk,
		address: account.Address.String(),
		closed:  make(chan struct{}),
	}, nil
}

// Address returns the account address of the wallet
func (w *MnemonicWallet) Address() string {
	return w.address
}

func (w *MnemonicWallet) Connect(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []string{w.address}, nil
}

func (w *MnemonicWallet) SignTransactions(ctx context.Context, groups [][]SignRequest) (any, error) {
	signed := make([][]byte, 0)
	for _, group := range groups {
		for _, req := range group {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if !w.signsFor(req.Signers) {
				signed = append(signed, nil)
				continue
			}

			var tx types.Transaction
			if err := msgpack.Decode(req.Txn, &tx); err != nil {
				return nil, fmt.Errorf("failed to decode transaction: %w", err)
			}

			_, stx, err := crypto.SignTransaction(w.key, tx)
			if err != nil {
				return nil, fmt.Errorf("failed to sign transaction: %w", err)
			}
			signed = append(signed, stx)
		}
	}
	return signed, nil
}

func (w *MnemonicWallet) signsFor(signers []string) bool {
	if len(signers) == 0 {
		return true
	}
	for _, s := range signers {
		if s == w.address {
			return true
		}
	}
	return false
}

// Disconnect is a no-op; the key stays in memory for the lifetime of the process
func (w *MnemonicWallet) Disconnect(context.Context) error {
	return nil
}

// Disconnected never fires for a local wallet
func (w *MnemonicWallet) Disconnected() <-chan struct{} {
	return w.closed
}
