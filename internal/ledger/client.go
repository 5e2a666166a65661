package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/alitto/pond/v2"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// Fee and reserve amounts in microAlgos
const (
	MinTxnFee       uint64 = 1_000
	BaseMinBalance  uint64 = 100_000
	AssetMinBalance uint64 = 100_000
	FundingReserve  uint64 = 200_000
)

// Defaults for Config
const (
	DefaultWaitRounds        uint64 = 4
	DefaultVerifyAttempts           = 3
	DefaultVerifyDelay              = 2 * time.Second
	DefaultAssetInfoAttempts        = 3
	DefaultAssetInfoDelay           = time.Second
	DefaultWorkerConcurrency        = 8
)

// Config holds the ledger client settings
type Config struct {
	AppID             uint64
	ExplorerURL       string
	WaitRounds        uint64
	VerifyAttempts    int
	VerifyDelay       time.Duration
	AssetInfoAttempts int
	AssetInfoDelay    time.Duration
	WorkerConcurrency int
}

func (c Config) withDefaults() Config {
	if c.ExplorerURL == "" {
		c.ExplorerURL = domain.DEFAULT_TESTNET_EXPLORER_URL
	}
	if c.WaitRounds == 0 {
		c.WaitRounds = DefaultWaitRounds
	}
	if c.VerifyAttempts <= 0 {
		c.VerifyAttempts = DefaultVerifyAttempts
	}
	if c.VerifyDelay <= 0 {
		c.VerifyDelay = DefaultVerifyDelay
	}
	if c.AssetInfoAttempts <= 0 {
		c.AssetInfoAttempts = DefaultAssetInfoAttempts
	}
	if c.AssetInfoDelay <= 0 {
		c.AssetInfoDelay = DefaultAssetInfoDelay
	}
	if c.WorkerConcurrency <= 0 {
		c.WorkerConcurrency = DefaultWorkerConcurrency
	}
	return c
}

// Signer produces signed transaction bytes for an identity.
//
//go:generate mockgen -source=client.go -destination=../mocks/signer.go -package=mocks -mock_names=Signer=MockSigner
type Signer interface {
	SignTransactions(ctx context.Context, identity string, txns []types.Transaction) ([][]byte, error)
}

// ErrAppNotConfigured is returned by contract operations when no application id is set
var ErrAppNotConfigured = errors.New("registry application id not configured")

// Client reads title state from the indexer and drives contract calls through algod
type Client struct {
	cfg     Config
	algod   adapter.Algod
	indexer adapter.Indexer
	signer  Signer
	clock   adapter.Clock
	pool    pond.ResultPool[*domain.Asset]
}

// NewClient creates a ledger client. signer may be nil for read-only use.
func NewClient(cfg Config, algod adapter.Algod, indexer adapter.Indexer, signer Signer, clock adapter.Clock) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg:     cfg,
		algod:   algod,
		indexer: indexer,
		signer:  signer,
		clock:   clock,
		pool:    pond.NewResultPool[*domain.Asset](cfg.WorkerConcurrency),
	}
}

// Close stops the worker pool
func (c *Client) Close() {
	c.pool.StopAndWait()
}

// AppID returns the registry application id
func (c *Client) AppID() uint64 {
	return c.cfg.AppID
}

// ApplicationAddress returns the escrow address of the registry application
func (c *Client) ApplicationAddress() string {
	return ApplicationAddress(c.cfg.AppID)
}

// ApplicationAddress returns the escrow address of an application
func ApplicationAddress(appID uint64) string {
	return crypto.GetApplicationAddress(appID).String()
}

// ExplorerTxURL returns the explorer link of a transaction
func (c *Client) ExplorerTxURL(txID string) string {
	if txID == "" {
		return ""
	}
	return fmt.Sprintf("%s/tx/%s", c.cfg.ExplorerURL, txID)
}

func (c *Client) requireApp() error {
	if c.cfg.AppID == 0 {
		return ErrAppNotConfigured
	}
	return nil
}

func (c *Client) requireSigner() error {
	if c.signer == nil {
		return errors.New("no signer configured for ledger writes")
	}
	return nil
}
