package domain

import (
	"time"
)

// TransactionType is the ledger transaction type as reported by the indexer
type TransactionType string

const (
	TransactionTypePayment       TransactionType = "pay"
	TransactionTypeAssetConfig   TransactionType = "acfg"
	TransactionTypeAssetTransfer TransactionType = "axfer"
	TransactionTypeApplication   TransactionType = "appl"
	TransactionTypeKeyReg        TransactionType = "keyreg"
	TransactionTypeAssetFreeze   TransactionType = "afrz"
)

// TitleMetadata is the off-ledger JSON document referenced by a title's metadata URL
type TitleMetadata struct {
	LandID       string    `json:"landId"`
	Location     string    `json:"location"`
	Area         string    `json:"area"`
	Municipality string    `json:"municipality"`
	DocumentHash string    `json:"documentHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TitleRecord is the logical land title represented by a single NFT.
// Owner is derived from transfer history, never stored.
type TitleRecord struct {
	AssetID     uint64         `json:"assetId"`
	LandID      string         `json:"landId"`
	MetadataURL string         `json:"metadataUrl"`
	Creator     string         `json:"creator"`
	Owner       string         `json:"owner"`
	Metadata    *TitleMetadata `json:"metadata,omitempty"`
}

// Asset is the ledger view of an asset's parameters
type Asset struct {
	Index    uint64 `json:"index"`
	Creator  string `json:"creator"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
	URL      string `json:"url"`
	Decimals uint64 `json:"decimals"`
	Total    uint64 `json:"total"`
	Manager  string `json:"manager,omitempty"`
	Reserve  string `json:"reserve,omitempty"`
	Freeze   string `json:"freeze,omitempty"`
	Clawback string `json:"clawback,omitempty"`
	Deleted  bool   `json:"deleted"`
}

// IsNFT reports whether the asset parameters describe a single indivisible unit
func (a *Asset) IsNFT() bool {
	return a != nil && a.Total == 1 && a.Decimals == 0
}

// AssetHolding is an account's balance of one asset
type AssetHolding struct {
	AssetID  uint64 `json:"assetId"`
	Amount   uint64 `json:"amount"`
	IsFrozen bool   `json:"isFrozen"`
}

// Account is the subset of account state the registry needs
type Account struct {
	Address            string         `json:"address"`
	Amount             uint64         `json:"amount"`
	MinBalance         uint64         `json:"minBalance"`
	Assets             []AssetHolding `json:"assets"`
	TotalAssetsOptedIn uint64         `json:"totalAssetsOptedIn"`
	TotalCreatedAssets uint64         `json:"totalCreatedAssets"`
}

// HoldsAsset reports whether the account holds a non-zero balance of assetID
func (a *Account) HoldsAsset(assetID uint64) bool {
	if a == nil {
		return false
	}
	for _, h := range a.Assets {
		if h.AssetID == assetID && h.Amount > 0 {
			return true
		}
	}
	return false
}

// OptedIn reports whether the account has registered to hold assetID
func (a *Account) OptedIn(assetID uint64) bool {
	if a == nil {
		return false
	}
	for _, h := range a.Assets {
		if h.AssetID == assetID {
			return true
		}
	}
	return false
}

// LedgerTransaction is a confirmed transaction as returned by the indexer.
// Inner holds transactions issued by an application call.
type LedgerTransaction struct {
	ID                string              `json:"id"`
	Type              TransactionType     `json:"type"`
	Sender            string              `json:"sender"`
	Receiver          string              `json:"receiver,omitempty"`
	Amount            uint64              `json:"amount"`
	AssetID           uint64              `json:"assetId,omitempty"`
	ApplicationID     uint64              `json:"applicationId,omitempty"`
	ConfirmedRound    uint64              `json:"confirmedRound"`
	RoundTime         uint64              `json:"roundTime"`
	IntraRoundOffset  uint64              `json:"intraRoundOffset"`
	CreatedAssetIndex uint64              `json:"createdAssetIndex,omitempty"`
	Inner             []LedgerTransaction `json:"innerTxns,omitempty"`
}

// IsAssetTransfer reports whether the transaction moves a positive amount of an asset
func (t *LedgerTransaction) IsAssetTransfer() bool {
	return t.Type == TransactionTypeAssetTransfer && t.Amount > 0 && t.Receiver != ""
}

// PublicRecord is the read-only verification view of a title
type PublicRecord struct {
	AssetID           uint64              `json:"assetId"`
	Asset             Asset               `json:"asset"`
	CurrentOwner      string              `json:"currentOwner"`
	Metadata          *TitleMetadata      `json:"metadata,omitempty"`
	MetadataAvailable bool                `json:"metadataAvailable"`
	Transactions      []LedgerTransaction `json:"transactions"`
}

// MigrationResult is the per-item outcome of copying one content identifier
type MigrationResult struct {
	Success     bool   `json:"success"`
	OriginalCID string `json:"originalCid"`
	NewCID      string `json:"newCid"`
	Error       string `json:"error,omitempty"`
}

// MigrationReport aggregates the results of a migration run
type MigrationReport struct {
	ID           string            `json:"id"`
	Source       string            `json:"source"`
	Target       string            `json:"target"`
	TotalItems   int               `json:"totalItems"`
	SuccessCount int               `json:"successCount"`
	FailureCount int               `json:"failureCount"`
	Results      []MigrationResult `json:"results"`
	StartTime    time.Time         `json:"startTime"`
	EndTime      time.Time         `json:"endTime"`
	Duration     time.Duration     `json:"duration"`
}

// Mappings returns original to new identifiers for the successful items
func (r *MigrationReport) Mappings() map[string]string {
	mappings := make(map[string]string, r.SuccessCount)
	for _, res := range r.Results {
		if res.Success {
			mappings[res.OriginalCID] = res.NewCID
		}
	}
	return mappings
}

// ValidationReport is the outcome of comparing migrated content with the original
type ValidationReport struct {
	TotalValidated int      `json:"totalValidated"`
	ValidCount     int      `json:"validCount"`
	InvalidCount   int      `json:"invalidCount"`
	Errors         []string `json:"errors"`
}

// EventType is the type of a registry event published to the message broker
type EventType string

const (
	EventTypeTitleCreated       EventType = "title.created"
	EventTypeTitleTransferred   EventType = "title.transferred"
	EventTypeMigrationCompleted EventType = "migration.completed"
)

// Event is a registry event published after a successful write or migration run
type Event struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	AssetID   uint64         `json:"assetId,omitempty"`
	TxID      string         `json:"txId,omitempty"`
	From      string         `json:"from,omitempty"`
	To        string         `json:"to,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
