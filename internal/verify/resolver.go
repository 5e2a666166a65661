package verify

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/storage"
)

// DefaultLandIDPattern matches land identifiers such as LR/2024/001 or NBI-44-7
const DefaultLandIDPattern = `^[A-Z0-9]+([/-][A-Z0-9]+)+$`

const defaultConcurrency = 4

var defaultLandIDRe = regexp.MustCompile(DefaultLandIDPattern)

// Reader is the ledger read surface the resolver needs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/ledger_reader.go -package=mocks -mock_names=Reader=MockLedgerReader
type Reader interface {
	// GetAssetInfoWithRetry returns the asset parameters, false when the asset is unknown
	GetAssetInfoWithRetry(ctx context.Context, assetID uint64) (*domain.Asset, bool)

	// GetAssetTransactions returns the asset's transaction history
	GetAssetTransactions(ctx context.Context, assetID uint64) []domain.LedgerTransaction
}

// ValidLandID reports whether landID matches the default land identifier pattern
func ValidLandID(landID string) bool {
	return defaultLandIDRe.MatchString(landID)
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLandIDPattern overrides the land identifier pattern used by structural validation
func WithLandIDPattern(re *regexp.Regexp) Option {
	return func(r *Resolver) {
		r.landIDRe = re
	}
}

// WithConcurrency sets how many lookups run in parallel per verification
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// Resolver assembles the public record of a title from the ledger and content storage
type Resolver struct {
	ledger      Reader
	storage     storage.Provider
	landIDRe    *regexp.Regexp
	concurrency int
	pool        pond.Pool
}

// NewResolver creates a Resolver. storage may be nil, in which case metadata is always reported unavailable.
func NewResolver(ledger Reader, provider storage.Provider, opts ...Option) *Resolver {
	r := &Resolver{
		ledger:      ledger,
		storage:     provider,
		landIDRe:    defaultLandIDRe,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.pool = pond.NewPool(r.concurrency)
	return r
}

// Close stops the worker pool
func (r *Resolver) Close() {
	r.pool.StopAndWait()
}

// Verify returns the public record of a title. It fails with ErrAssetNotFound for unknown
// assets and with a TitleValidationError when the asset is not a land title.
// Unavailable metadata is reported on the record, not as an error.
func (r *Resolver) Verify(ctx context.Context, assetID uint64) (*domain.PublicRecord, error) {
	asset, ok := r.ledger.GetAssetInfoWithRetry(ctx, assetID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrAssetNotFound, assetID)
	}

	if err := r.ValidateTitleAsset(asset); err != nil {
		return nil, err
	}

	record := &domain.PublicRecord{
		AssetID: assetID,
		Asset:   *asset,
	}

	var metadata *domain.TitleMetadata
	group := r.pool.NewGroup()
	group.Submit(func() {
		record.Transactions = r.ledger.GetAssetTransactions(ctx, assetID)
	})
	group.Submit(func() {
		metadata = r.fetchMetadata(ctx, asset)
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve title %d: %w", assetID, err)
	}

	record.CurrentOwner = ResolveOwner(asset.Creator, assetID, record.Transactions)
	record.Metadata = metadata
	record.MetadataAvailable = metadata != nil

	logger.DebugCtx(ctx, "Title verified",
		zap.Uint64("assetID", assetID),
		zap.String("owner", record.CurrentOwner),
		zap.Int("transactions", len(record.Transactions)),
		zap.Bool("metadataAvailable", record.MetadataAvailable))

	return record, nil
}

// ValidateTitleAsset checks the asset parameters describe a land title and reports every failed check
func (r *Resolver) ValidateTitleAsset(asset *domain.Asset) error {
	return validateTitleAsset(r.landIDRe, asset)
}

// ValidateTitleAsset checks an asset against the default land identifier pattern
func ValidateTitleAsset(asset *domain.Asset) error {
	return validateTitleAsset(defaultLandIDRe, asset)
}

func validateTitleAsset(landIDRe *regexp.Regexp, asset *domain.Asset) error {
	if asset == nil {
		return &domain.TitleValidationError{Failures: []string{"asset is missing"}}
	}

	var failures []string
	if !landIDRe.MatchString(asset.Name) {
		failures = append(failures, fmt.Sprintf("name %q does not match land identifier pattern %s", asset.Name, landIDRe.String()))
	}
	if asset.Decimals != 0 {
		failures = append(failures, fmt.Sprintf("decimals is %d, expected 0", asset.Decimals))
	}
	if asset.Total != 1 {
		failures = append(failures, fmt.Sprintf("total supply is %d, expected 1", asset.Total))
	}
	if strings.TrimSpace(asset.URL) == "" {
		failures = append(failures, "metadata URL is missing")
	}

	if len(failures) > 0 {
		return &domain.TitleValidationError{AssetID: asset.Index, Failures: failures}
	}
	return nil
}

// ResolveOwner returns the receiver of the most recent transfer of assetID, or creator when there is none.
// Transfers are ordered by round, then by position in the round; inner transactions count as
// transfers and among siblings the later one wins. Transfers of other assets are ignored.
func ResolveOwner(creator string, assetID uint64, txns []domain.LedgerTransaction) string {
	transfers := flattenTransfers(assetID, txns, nil)
	if len(transfers) == 0 {
		return creator
	}

	sort.Slice(transfers, func(i, j int) bool {
		if transfers[i].ConfirmedRound != transfers[j].ConfirmedRound {
			return transfers[i].ConfirmedRound > transfers[j].ConfirmedRound
		}
		if transfers[i].IntraRoundOffset != transfers[j].IntraRoundOffset {
			return transfers[i].IntraRoundOffset > transfers[j].IntraRoundOffset
		}
		return transfers[i].seq > transfers[j].seq
	})

	return transfers[0].Receiver
}

type sequencedTransfer struct {
	domain.LedgerTransaction
	seq int
}

func flattenTransfers(assetID uint64, txns []domain.LedgerTransaction, into []sequencedTransfer) []sequencedTransfer {
	for _, tx := range txns {
		if tx.IsAssetTransfer() && (tx.AssetID == 0 || tx.AssetID == assetID) {
			into = append(into, sequencedTransfer{LedgerTransaction: tx, seq: len(into)})
		}
		if len(tx.Inner) == 0 {
			continue
		}
		inner := make([]domain.LedgerTransaction, len(tx.Inner))
		copy(inner, tx.Inner)
		// inner transactions share the position of their parent
		for i := range inner {
			if inner[i].ConfirmedRound == 0 {
				inner[i].ConfirmedRound = tx.ConfirmedRound
			}
			inner[i].IntraRoundOffset = tx.IntraRoundOffset
		}
		into = flattenTransfers(assetID, inner, into)
	}
	return into
}

// fetchMetadata loads the metadata document. Any failure yields nil.
func (r *Resolver) fetchMetadata(ctx context.Context, asset *domain.Asset) *domain.TitleMetadata {
	if r.storage == nil {
		return nil
	}

	cid := storage.CIDFromURL(asset.URL)
	if cid == "" || strings.Contains(cid, "://") {
		logger.DebugCtx(ctx, "Title metadata URL is not content addressed", zap.Uint64("assetID", asset.Index), zap.String("url", asset.URL))
		return nil
	}

	var metadata domain.TitleMetadata
	if err := r.storage.FetchJSON(ctx, cid, &metadata); err != nil {
		logger.WarnCtx(ctx, "Title metadata unavailable",
			zap.Uint64("assetID", asset.Index),
			zap.String("cid", cid),
			zap.Error(err))
		return nil
	}
	return &metadata
}
