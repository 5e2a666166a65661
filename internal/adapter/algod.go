package adapter

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/client/v2/common/models"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// ErrNotFound is returned by the ledger adapters when the node or indexer answers 404
var ErrNotFound = errors.New("ledger resource not found")

// TealValue is a decoded application global state value
type TealValue struct {
	// Type is 1 for bytes and 2 for uint
	Type  uint64
	Bytes []byte
	Uint  uint64
}

// ConfirmedTransaction is the node's view of a confirmed transaction, including inner transactions
type ConfirmedTransaction struct {
	TxID             string
	Type             string
	ConfirmedRound   uint64
	AssetIndex       uint64
	ApplicationIndex uint64
	XferAsset        uint64
	PoolError        string
	Logs             [][]byte
	InnerTxns        []ConfirmedTransaction
}

// Algod defines an interface for the ledger node operations the registry uses, to enable mocking
//
//go:generate mockgen -source=algod.go -destination=../mocks/algod.go -package=mocks -mock_names=Algod=MockAlgod
type Algod interface {
	// AccountInformation returns balance and holdings of an address
	AccountInformation(ctx context.Context, address string) (*domain.Account, error)

	// ApplicationGlobalState returns the decoded global state of an application keyed by plain-text key
	ApplicationGlobalState(ctx context.Context, appID uint64) (map[string]TealValue, error)

	// SuggestedParams returns the network parameters used to build transactions
	SuggestedParams(ctx context.Context) (types.SuggestedParams, error)

	// SendRawTransaction submits signed transaction bytes and returns the transaction id
	SendRawTransaction(ctx context.Context, raw []byte) (string, error)

	// WaitForConfirmation blocks until txID is confirmed or waitRounds pass
	WaitForConfirmation(ctx context.Context, txID string, waitRounds uint64) (*ConfirmedTransaction, error)
}

type algodClient struct {
	client *algod.Client
}

// NewAlgod creates an Algod adapter for the node at address
func NewAlgod(address, token string) (Algod, error) {
	client, err := algod.MakeClient(address, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create algod client: %w", err)
	}
	return &algodClient{client: client}, nil
}

func (a *algodClient) AccountInformation(ctx context.Context, address string) (*domain.Account, error) {
	info, err := a.client.AccountInformation(address).Do(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	account := &domain.Account{
		Address:            info.Address,
		Amount:             info.Amount,
		MinBalance:         info.MinBalance,
		TotalAssetsOptedIn: info.TotalAssetsOptedIn,
		TotalCreatedAssets: info.TotalCreatedAssets,
	}
	for _, h := range info.Assets {
		account.Assets = append(account.Assets, domain.AssetHolding{
			AssetID:  h.AssetId,
			Amount:   h.Amount,
			IsFrozen: h.IsFrozen,
		})
	}
	if account.Address == "" {
		account.Address = address
	}

	return account, nil
}

func (a *algodClient) ApplicationGlobalState(ctx context.Context, appID uint64) (map[string]TealValue, error) {
	app, err := a.client.GetApplicationByID(appID).Do(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return DecodeGlobalState(app.Params.GlobalState)
}

// DecodeGlobalState decodes base64 keys and byte values of an application's global state
func DecodeGlobalState(state []models.TealKeyValue) (map[string]TealValue, error) {
	decoded := make(map[string]TealValue, len(state))
	for _, kv := range state {
		key, err := base64.StdEncoding.DecodeString(kv.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode global state key %q: %w", kv.Key, err)
		}

		value := TealValue{Type: kv.Value.Type, Uint: kv.Value.Uint}
		if kv.Value.Bytes != "" {
			value.Bytes, err = base64.StdEncoding.DecodeString(kv.Value.Bytes)
			if err != nil {
				return nil, fmt.Errorf("failed to decode global state value for %q: %w", string(key), err)
			}
		}
		decoded[string(key)] = value
	}
	return decoded, nil
}

func (a *algodClient) SuggestedParams(ctx context.Context) (types.SuggestedParams, error) {
	return a.client.SuggestedParams().Do(ctx)
}

func (a *algodClient) SendRawTransaction(ctx context.Context, raw []byte) (string, error) {
	return a.client.SendRawTransaction(raw).Do(ctx)
}

func (a *algodClient) WaitForConfirmation(ctx context.Context, txID string, waitRounds uint64) (*ConfirmedTransaction, error) {
	resp, err := transaction.WaitForConfirmation(a.client, txID, waitRounds, ctx)
	if err != nil {
		return nil, err
	}

	confirmed := fromPendingResponse(resp)
	confirmed.TxID = txID
	return &confirmed, nil
}

func fromPendingResponse(resp models.PendingTransactionInfoResponse) ConfirmedTransaction {
	confirmed := ConfirmedTransaction{
		Type:             string(resp.Transaction.Txn.Type),
		ConfirmedRound:   resp.ConfirmedRound,
		AssetIndex:       resp.AssetIndex,
		ApplicationIndex: resp.ApplicationIndex,
		XferAsset:        uint64(resp.Transaction.Txn.XferAsset),
		PoolError:        resp.PoolError,
		Logs:             resp.Logs,
	}
	for _, inner := range resp.InnerTxns {
		confirmed.InnerTxns = append(confirmed.InnerTxns, fromPendingResponse(models.PendingTransactionInfoResponse(inner)))
	}
	return confirmed
}

// wrapNotFound maps 404 style responses onto ErrNotFound.
// The SDK surfaces HTTP errors as untyped errors, so the message is inspected.
func wrapNotFound(err error) error {
	if err == nil {
		return nil
	}
	if IsNotFoundMessage(err.Error()) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

// IsNotFoundMessage reports whether an error message describes a missing ledger resource
func IsNotFoundMessage(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "404") ||
		strings.Contains(msg, "not found") ||
		strings.Contains(msg, "no accounts found") ||
		strings.Contains(msg, "no assets found")
}
