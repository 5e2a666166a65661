package adapter

import (
	"context"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/common/models"
	"github.com/algorand/go-algorand-sdk/v2/client/v2/indexer"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// maxTransactionPages bounds asset history pagination
const maxTransactionPages = 50

// Indexer defines an interface for the ledger indexer queries the registry uses, to enable mocking
//
//go:generate mockgen -source=indexer.go -destination=../mocks/indexer.go -package=mocks -mock_names=Indexer=MockIndexer
type Indexer interface {
	// LookupAccountAssets returns the asset holdings of an address
	LookupAccountAssets(ctx context.Context, address string) ([]domain.AssetHolding, error)

	// LookupAsset returns the parameters of an asset
	LookupAsset(ctx context.Context, assetID uint64) (*domain.Asset, error)

	// LookupAssetTransactions returns every transaction touching an asset, including inner transactions
	LookupAssetTransactions(ctx context.Context, assetID uint64) ([]domain.LedgerTransaction, error)

	// SearchAssetsByUnitName returns assets whose unit name matches unit
	SearchAssetsByUnitName(ctx context.Context, unit string) ([]domain.Asset, error)

	// LookupAccount returns the indexed state of an address
	LookupAccount(ctx context.Context, address string) (*domain.Account, error)
}

type indexerClient struct {
	client *indexer.Client
}

// NewIndexer creates an Indexer adapter for the indexer at address
func NewIndexer(address, token string) (Indexer, error) {
	client, err := indexer.MakeClient(address, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer client: %w", err)
	}
	return &indexerClient{client: client}, nil
}

func (i *indexerClient) LookupAccountAssets(ctx context.Context, address string) ([]domain.AssetHolding, error) {
	resp, err := i.client.LookupAccountAssets(address).Do(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	holdings := make([]domain.AssetHolding, 0, len(resp.Assets))
	for _, h := range resp.Assets {
		holdings = append(holdings, domain.AssetHolding{
			AssetID:  h.AssetId,
			Amount:   h.Amount,
			IsFrozen: h.IsFrozen,
		})
	}
	return holdings, nil
}

func (i *indexerClient) LookupAsset(ctx context.Context, assetID uint64) (*domain.Asset, error) {
	_, asset, err := i.client.LookupAssetByID(assetID).Do(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	a := toDomainAsset(asset)
	return &a, nil
}

func (i *indexerClient) LookupAssetTransactions(ctx context.Context, assetID uint64) ([]domain.LedgerTransaction, error) {
	var (
		txs  []domain.LedgerTransaction
		next string
	)

	for page := 0; page < maxTransactionPages; page++ {
		req := i.client.LookupAssetTransactions(assetID)
		if next != "" {
			req = req.NextToken(next)
		}

		resp, err := req.Do(ctx)
		if err != nil {
			return nil, wrapNotFound(err)
		}

		for _, tx := range resp.Transactions {
			txs = append(txs, toDomainTransaction(tx))
		}

		if resp.NextToken == "" || len(resp.Transactions) == 0 {
			break
		}
		next = resp.NextToken
	}

	return txs, nil
}

func (i *indexerClient) SearchAssetsByUnitName(ctx context.Context, unit string) ([]domain.Asset, error) {
	resp, err := i.client.SearchForAssets().Unit(unit).Do(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	assets := make([]domain.Asset, 0, len(resp.Assets))
	for _, a := range resp.Assets {
		assets = append(assets, toDomainAsset(a))
	}
	return assets, nil
}

func (i *indexerClient) LookupAccount(ctx context.Context, address string) (*domain.Account, error) {
	_, acct, err := i.client.LookupAccountByID(address).Do(ctx)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	account := &domain.Account{
		Address:            address,
		Amount:             acct.Amount,
		MinBalance:         acct.MinBalance,
		TotalAssetsOptedIn: acct.TotalAssetsOptedIn,
		TotalCreatedAssets: acct.TotalCreatedAssets,
	}
	for _, h := range acct.Assets {
		account.Assets = append(account.Assets, domain.AssetHolding{
			AssetID:  h.AssetId,
			Amount:   h.Amount,
			IsFrozen: h.IsFrozen,
		})
	}
	return account, nil
}

func toDomainAsset(a models.Asset) domain.Asset {
	return domain.Asset{
		Index:    a.Index,
		Creator:  a.Params.Creator,
		Name:     a.Params.Name,
		UnitName: a.Params.UnitName,
		URL:      a.Params.Url,
		Decimals: a.Params.Decimals,
		Total:    a.Params.Total,
		Manager:  a.Params.Manager,
		Reserve:  a.Params.Reserve,
		Freeze:   a.Params.Freeze,
		Clawback: a.Params.Clawback,
		Deleted:  a.Deleted,
	}
}

func toDomainTransaction(tx models.Transaction) domain.LedgerTransaction {
	ltx := domain.LedgerTransaction{
		ID:                tx.Id,
		Type:              domain.TransactionType(tx.Type),
		Sender:            tx.Sender,
		ConfirmedRound:    tx.ConfirmedRound,
		RoundTime:         tx.RoundTime,
		IntraRoundOffset:  tx.IntraRoundOffset,
		CreatedAssetIndex: tx.CreatedAssetIndex,
	}

	switch ltx.Type {
	case domain.TransactionTypeAssetTransfer:
		ltx.Receiver = tx.AssetTransferTransaction.Receiver
		ltx.Amount = tx.AssetTransferTransaction.Amount
		ltx.AssetID = tx.AssetTransferTransaction.AssetId
	case domain.TransactionTypePayment:
		ltx.Receiver = tx.PaymentTransaction.Receiver
		ltx.Amount = tx.PaymentTransaction.Amount
	case domain.TransactionTypeApplication:
		ltx.ApplicationID = tx.ApplicationTransaction.ApplicationId
	}

	for _, inner := range tx.InnerTxns {
		ltx.Inner = append(ltx.Inner, toDomainTransaction(inner))
	}
	return ltx
}
