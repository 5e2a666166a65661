package verify_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/mocks"
	"github.com/ardhichain/ardhi-registry/internal/verify"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const creator = "CONTRACTADDRESS"

func titleAsset() *domain.Asset {
	return &domain.Asset{
		Index:    42,
		Creator:  creator,
		Name:     "LR/2024/001",
		UnitName: "ARDHI",
		URL:      "ipfs://bafymeta",
		Total:    1,
		Decimals: 0,
	}
}

func transfer(round uint64, receiver string) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		ID:             fmt.Sprintf("TX%d", round),
		Type:           domain.TransactionTypeAssetTransfer,
		Sender:         creator,
		Receiver:       receiver,
		Amount:         1,
		AssetID:        42,
		ConfirmedRound: round,
	}
}

// TestResolveOwner_MostRecentRound tests the owner comes from the highest round, not the last processed
func TestResolveOwner_MostRecentRound(t *testing.T) {
	txns := []domain.LedgerTransaction{
		transfer(5, "OWNER_AT_5"),
		transfer(12, "OWNER_AT_12"),
		transfer(8, "OWNER_AT_8"),
	}

	assert.Equal(t, "OWNER_AT_12", verify.ResolveOwner(creator, 42, txns))
}

// TestResolveOwner_DefaultsToCreator tests histories without positive transfers
func TestResolveOwner_DefaultsToCreator(t *testing.T) {
	assert.Equal(t, creator, verify.ResolveOwner(creator, 42, nil))

	optIn := transfer(3, creator)
	optIn.Amount = 0
	config := domain.LedgerTransaction{Type: domain.TransactionTypeAssetConfig, ConfirmedRound: 2, CreatedAssetIndex: 42}
	assert.Equal(t, creator, verify.ResolveOwner(creator, 42, []domain.LedgerTransaction{config, optIn}))
}

// TestResolveOwner_InnerTransactions tests transfers issued by the contract are followed
func TestResolveOwner_InnerTransactions(t *testing.T) {
	txns := []domain.LedgerTransaction{
		transfer(10, "ADMIN"),
		{
			Type:             domain.TransactionTypeApplication,
			ConfirmedRound:   15,
			IntraRoundOffset: 2,
			Inner: []domain.LedgerTransaction{
				{Type: domain.TransactionTypeAssetTransfer, Sender: "HOLDER", Receiver: creator, Amount: 1, AssetID: 42},
				{Type: domain.TransactionTypeAssetTransfer, Sender: creator, Receiver: "BUYER", Amount: 1, AssetID: 42},
			},
		},
	}

	assert.Equal(t, "BUYER", verify.ResolveOwner(creator, 42, txns))
}

// TestResolveOwner_OtherAssets tests inner transfers of other assets do not change the owner
func TestResolveOwner_OtherAssets(t *testing.T) {
	txns := []domain.LedgerTransaction{
		transfer(10, "HOLDER"),
		{
			Type:           domain.TransactionTypeApplication,
			ConfirmedRound: 20,
			Inner: []domain.LedgerTransaction{
				{Type: domain.TransactionTypeAssetTransfer, Sender: "HOLDER", Receiver: "FEE_COLLECTOR", Amount: 5, AssetID: 77},
			},
		},
	}

	assert.Equal(t, "HOLDER", verify.ResolveOwner(creator, 42, txns))
}

// TestResolveOwner_SameRound tests the later transaction in a round wins
func TestResolveOwner_SameRound(t *testing.T) {
	first := transfer(7, "FIRST")
	first.IntraRoundOffset = 1
	second := transfer(7, "SECOND")
	second.IntraRoundOffset = 4

	assert.Equal(t, "SECOND", verify.ResolveOwner(creator, 42, []domain.LedgerTransaction{second, first}))
}

// TestValidateTitleAsset_RejectsPlainName tests the land identifier check alone rejects a well-formed NFT
func TestValidateTitleAsset_RejectsPlainName(t *testing.T) {
	asset := titleAsset()
	asset.Name = "ABC123"

	err := verify.ValidateTitleAsset(asset)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)
	var validationErr *domain.TitleValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Failures, 1)
	assert.Contains(t, validationErr.Failures[0], `name "ABC123"`)
	assert.Contains(t, err.Error(), "land identifier pattern")
}

// TestValidateTitleAsset_CollectsEveryFailure tests all failed checks are reported together
func TestValidateTitleAsset_CollectsEveryFailure(t *testing.T) {
	asset := &domain.Asset{Index: 9, Name: "bad name", Decimals: 2, Total: 100}

	err := verify.ValidateTitleAsset(asset)

	var validationErr *domain.TitleValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Failures, 4)
	assert.Contains(t, err.Error(), "decimals is 2")
	assert.Contains(t, err.Error(), "total supply is 100")
	assert.Contains(t, err.Error(), "metadata URL is missing")
}

// TestValidateTitleAsset_SingleUnitProperty tests only single indivisible assets pass validation
func TestValidateTitleAsset_SingleUnitProperty(t *testing.T) {
	for total := uint64(0); total <= 3; total++ {
		for decimals := uint64(0); decimals <= 3; decimals++ {
			asset := titleAsset()
			asset.Total = total
			asset.Decimals = decimals

			err := verify.ValidateTitleAsset(asset)
			if total == 1 && decimals == 0 {
				assert.NoError(t, err, "total=%d decimals=%d", total, decimals)
				assert.True(t, asset.IsNFT())
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTitle, "total=%d decimals=%d", total, decimals)
			}
		}
	}
}

func TestValidateTitleAsset_Patterns(t *testing.T) {
	for _, name := range []string{"LR/2024/001", "NBI-44-7", "A/B", "KJD/12-3"} {
		asset := titleAsset()
		asset.Name = name
		assert.NoError(t, verify.ValidateTitleAsset(asset), name)
	}
	for _, name := range []string{"", "lr/2024/001", "LR//1", "/LR/1", "LR/1/", "LR 1"} {
		asset := titleAsset()
		asset.Name = name
		assert.Error(t, verify.ValidateTitleAsset(asset), name)
	}
}

// TestVerify tests the public record carries owner, history and metadata
func TestVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockLedgerReader(ctrl)
	provider := mocks.NewMockStorageProvider(ctrl)

	history := []domain.LedgerTransaction{transfer(5, "ALICE"), transfer(9, "BOB")}
	reader.EXPECT().GetAssetInfoWithRetry(gomock.Any(), uint64(42)).Return(titleAsset(), true)
	reader.EXPECT().GetAssetTransactions(gomock.Any(), uint64(42)).Return(history)
	provider.EXPECT().FetchJSON(gomock.Any(), "bafymeta", gomock.Any()).
		DoAndReturn(func(ctx context.Context, cid string, out any) error {
			md := out.(*domain.TitleMetadata)
			md.LandID = "LR/2024/001"
			md.Location = "Nairobi"
			return nil
		})

	resolver := verify.NewResolver(reader, provider)
	defer resolver.Close()

	record, err := resolver.Verify(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), record.AssetID)
	assert.Equal(t, "BOB", record.CurrentOwner)
	assert.Equal(t, history, record.Transactions)
	assert.True(t, record.MetadataAvailable)
	require.NotNil(t, record.Metadata)
	assert.Equal(t, "Nairobi", record.Metadata.Location)
}

// TestVerify_MetadataUnavailable tests a failed metadata fetch still yields a record
func TestVerify_MetadataUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockLedgerReader(ctrl)
	provider := mocks.NewMockStorageProvider(ctrl)

	reader.EXPECT().GetAssetInfoWithRetry(gomock.Any(), uint64(42)).Return(titleAsset(), true)
	reader.EXPECT().GetAssetTransactions(gomock.Any(), uint64(42)).Return([]domain.LedgerTransaction{})
	provider.EXPECT().FetchJSON(gomock.Any(), "bafymeta", gomock.Any()).Return(domain.ErrContentNotFound)

	resolver := verify.NewResolver(reader, provider)
	defer resolver.Close()

	record, err := resolver.Verify(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, record.MetadataAvailable)
	assert.Nil(t, record.Metadata)
	assert.Equal(t, creator, record.CurrentOwner)
}

// TestVerify_NotFound tests unknown assets
func TestVerify_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockLedgerReader(ctrl)
	reader.EXPECT().GetAssetInfoWithRetry(gomock.Any(), uint64(7)).Return(nil, false)

	resolver := verify.NewResolver(reader, nil)
	defer resolver.Close()

	_, err := resolver.Verify(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

// TestVerify_NotATitle tests structural validation runs before any history lookup
func TestVerify_NotATitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockLedgerReader(ctrl)

	asset := titleAsset()
	asset.Name = "ABC123"
	reader.EXPECT().GetAssetInfoWithRetry(gomock.Any(), uint64(42)).Return(asset, true)

	resolver := verify.NewResolver(reader, nil)
	defer resolver.Close()

	_, err := resolver.Verify(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)
}

func TestVerify_CustomPattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockLedgerReader(ctrl)

	asset := titleAsset()
	asset.Name = "ABC123"
	asset.URL = "https://example.com/meta.json"
	reader.EXPECT().GetAssetInfoWithRetry(gomock.Any(), uint64(42)).Return(asset, true)
	reader.EXPECT().GetAssetTransactions(gomock.Any(), uint64(42)).Return(nil)

	resolver := verify.NewResolver(reader, mocks.NewMockStorageProvider(ctrl), verify.WithLandIDPattern(regexp.MustCompile(`^[A-Z]+[0-9]+$`)))
	defer resolver.Close()

	record, err := resolver.Verify(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, record.MetadataAvailable)
}
