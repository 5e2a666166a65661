package wallet

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// SignRequest is one unsigned transaction offered to the wallet
type SignRequest struct {
	// Txn is the msgpack encoded unsigned transaction
	Txn []byte
	// Signers lists the addresses expected to sign; empty lets the wallet decide
	Signers []string
}

// Wallet is an external signer holding the user's keys.
//
//go:generate mockgen -source=wallet.go -destination=../mocks/wallet.go -package=mocks -mock_names=Wallet=MockWallet
type Wallet interface {
	// Connect asks the wallet for its accounts
	Connect(ctx context.Context) ([]string, error)

	// SignTransactions signs groups of transactions. The response shape depends on
	// the wallet and is flattened with Normalize.
	SignTransactions(ctx context.Context, groups [][]SignRequest) (any, error)

	// Disconnect ends the wallet session
	Disconnect(ctx context.Context) error

	// Disconnected is closed when the wallet ends the session on its own
	Disconnected() <-chan struct{}
}

// ErrMalformedResponse is returned when a signing response cannot be flattened
var ErrMalformedResponse = errors.New("malformed wallet signing response")

// Normalize flattens a wallet signing response into a list of signed transactions.
// It accepts raw bytes, base64 strings, lists of either and arbitrarily nested lists.
// Empty and nil entries, which wallets return for transactions they did not sign, are dropped.
func Normalize(raw any) ([][]byte, error) {
	var out [][]byte
	if err := flatten(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(v any, out *[][]byte) error {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		if len(x) > 0 {
			*out = append(*out, x)
		}
	case string:
		if x == "" {
			return nil
		}
		b, err := decodeBase64(x)
		if err != nil {
			return err
		}
		*out = append(*out, b)
	case [][]byte:
		for _, b := range x {
			if err := flatten(b, out); err != nil {
				return err
			}
		}
	case []string:
		for _, s := range x {
			if err := flatten(s, out); err != nil {
				return err
			}
		}
	case []any:
		for _, e := range x {
			if err := flatten(e, out); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unsupported element of type %T", ErrMalformedResponse, v)
	}
	return nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: element is not base64", ErrMalformedResponse)
}

// ClassifyError maps wallet failure text onto the wallet error sentinels.
// Errors that match none are returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrWalletRejected) || errors.Is(err, domain.ErrWalletTimeout) || errors.Is(err, domain.ErrWalletOutdated) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %v", domain.ErrWalletTimeout, err)
	case strings.Contains(msg, "reject"),
		strings.Contains(msg, "cancel"),
		strings.Contains(msg, "declined"),
		strings.Contains(msg, "denied"):
		return fmt.Errorf("%w: %v", domain.ErrWalletRejected, err)
	case strings.Contains(msg, "version"),
		strings.Contains(msg, "not supported"),
		strings.Contains(msg, "unsupported"):
		return fmt.Errorf("%w: %v", domain.ErrWalletOutdated, err)
	default:
		return err
	}
}
