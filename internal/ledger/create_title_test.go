package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/ledger"
)

const (
	landID      = "LR/2024/001"
	metadataURL = "ipfs://bafymetadata"
)

func (f *fixture) expectAdminState() {
	f.algod.EXPECT().ApplicationGlobalState(gomock.Any(), testAppID).Return(map[string]adapter.TealValue{
		"admin": {Type: 1, Bytes: f.admin.Address[:]},
	}, nil)
}

func (f *fixture) expectFundedContract() {
	f.algod.EXPECT().AccountInformation(gomock.Any(), f.appAddress).Return(&domain.Account{
		Address: f.appAddress,
		Amount:  5_000_000,
	}, nil)
}

func (f *fixture) expectCallerBalance(amount uint64) {
	f.algod.EXPECT().AccountInformation(gomock.Any(), f.admin.Address.String()).Return(&domain.Account{
		Address:    f.admin.Address.String(),
		Amount:     amount,
		MinBalance: ledger.BaseMinBalance,
	}, nil)
}

func createTitleConfirmation(txID string, assetID uint64) *adapter.ConfirmedTransaction {
	return &adapter.ConfirmedTransaction{
		TxID:           txID,
		Type:           "appl",
		ConfirmedRound: 42,
		InnerTxns: []adapter.ConfirmedTransaction{
			{Type: "acfg", AssetIndex: assetID},
			{Type: "axfer", XferAsset: assetID},
		},
	}
}

// TestCreateTitle_InsufficientFunds tests the pre-flight check fails before any transaction is built
func TestCreateTitle_InsufficientFunds(t *testing.T) {
	f := newFixture(t)
	f.expectCallerBalance(1500)

	result, err := f.client.CreateTitle(context.Background(), f.admin.Address.String(), landID, metadataURL)

	assert.Nil(t, result)
	var fundsErr *domain.InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.Equal(t, domain.PartyCaller, fundsErr.Party)
	assert.Equal(t, uint64(1500), fundsErr.Balance)
	assert.Equal(t, uint64(302_000), fundsErr.Required)
	assert.Equal(t, uint64(300_500), fundsErr.Shortfall)
	assert.Contains(t, err.Error(), "0.300500")
}

// TestCreateTitle_Success tests the full protocol against a funded contract
func TestCreateTitle_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sender := f.admin.Address.String()

	f.expectCallerBalance(10_000_000)
	f.expectFundedContract()
	f.expectAdminState()
	f.algod.EXPECT().SuggestedParams(gomock.Any()).Return(suggestedParams(), nil)

	f.signer.EXPECT().SignTransactions(gomock.Any(), sender, gomock.Any()).
		DoAndReturn(func(ctx context.Context, identity string, txns []types.Transaction) ([][]byte, error) {
			require.Len(t, txns, 1)
			tx := txns[0]
			assert.Equal(t, types.ApplicationCallTx, tx.Type)
			assert.Equal(t, types.MicroAlgos(3*ledger.MinTxnFee), tx.Fee)
			assert.Equal(t, types.AppIndex(testAppID), tx.ApplicationID)
			require.Len(t, tx.ApplicationArgs, 3)
			assert.Equal(t, append([]byte{0, byte(len(landID))}, landID...), tx.ApplicationArgs[1])
			return [][]byte{[]byte("signed-create")}, nil
		})
	f.algod.EXPECT().SendRawTransaction(gomock.Any(), []byte("signed-create")).Return("CREATETX", nil)
	f.algod.EXPECT().WaitForConfirmation(gomock.Any(), "CREATETX", ledger.DefaultWaitRounds).
		Return(createTitleConfirmation("CREATETX", 777), nil)
	f.indexer.EXPECT().LookupAsset(gomock.Any(), uint64(777)).Return(&domain.Asset{
		Index: 777, Name: landID, UnitName: "ARDHI", URL: metadataURL, Total: 1, Decimals: 0, Creator: f.appAddress,
	}, nil)

	result, err := f.client.CreateTitle(ctx, sender, landID, metadataURL)
	require.NoError(t, err)

	assert.Equal(t, uint64(777), result.AssetID)
	assert.Equal(t, "CREATETX", result.TxID)
	assert.Equal(t, uint64(42), result.ConfirmedRound)
	assert.Empty(t, result.FundingTxID)
	assert.Equal(t, ledger.StatusVerified, result.Status)
}

// TestCreateTitle_PendingVerification tests indexer lag yields a pending status rather than an error
func TestCreateTitle_PendingVerification(t *testing.T) {
	f := newFixture(t)
	sender := f.admin.Address.String()

	f.expectCallerBalance(10_000_000)
	f.expectFundedContract()
	f.expectAdminState()
	f.algod.EXPECT().SuggestedParams(gomock.Any()).Return(suggestedParams(), nil)
	f.signer.EXPECT().SignTransactions(gomock.Any(), sender, gomock.Any()).Return([][]byte{[]byte("signed")}, nil)
	f.algod.EXPECT().SendRawTransaction(gomock.Any(), gomock.Any()).Return("CREATETX", nil)
	f.algod.EXPECT().WaitForConfirmation(gomock.Any(), "CREATETX", gomock.Any()).Return(createTitleConfirmation("CREATETX", 778), nil)
	f.indexer.EXPECT().LookupAsset(gomock.Any(), uint64(778)).Return(nil, adapter.ErrNotFound).Times(3)
	f.clock.EXPECT().Sleep(gomock.Any(), 2*time.Second).Return(nil).Times(2)

	result, err := f.client.CreateTitle(context.Background(), sender, landID, metadataURL)
	require.NoError(t, err)
	assert.Equal(t, uint64(778), result.AssetID)
	assert.Equal(t, ledger.StatusPendingVerification, result.Status)
}

// TestCreateTitle_FundsContract tests the contract is topped up by exactly its shortfall before the call
func TestCreateTitle_FundsContract(t *testing.T) {
	f := newFixture(t)
	sender := f.admin.Address.String()

	f.expectCallerBalance(10_000_000)

	// two titles held: requirement is 100000 + 3*100000 + 3000
	required := ledger.ContractRequirement(2)
	assert.Equal(t, uint64(403_000), required)

	gomock.InOrder(
		f.algod.EXPECT().AccountInformation(gomock.Any(), f.appAddress).Return(&domain.Account{
			Address: f.appAddress,
			Amount:  50_000,
			Assets:  []domain.AssetHolding{{AssetID: 1, Amount: 1}, {AssetID: 2, Amount: 1}},
		}, nil),
		f.algod.EXPECT().AccountInformation(gomock.Any(), f.appAddress).Return(&domain.Account{
			Address: f.appAddress,
			Amount:  required,
		}, nil),
	)
	f.algod.EXPECT().SuggestedParams(gomock.Any()).Return(suggestedParams(), nil)
	f.signer.EXPECT().SignTransactions(gomock.Any(), sender, gomock.Any()).
		DoAndReturn(func(ctx context.Context, identity string, txns []types.Transaction) ([][]byte, error) {
			require.Len(t, txns, 1)
			assert.Equal(t, types.PaymentTx, txns[0].Type)
			assert.Equal(t, types.MicroAlgos(required-50_000), txns[0].Amount)
			assert.Equal(t, f.appAddress, txns[0].Receiver.String())
			assert.Equal(t, types.MicroAlgos(ledger.MinTxnFee), txns[0].Fee)
			return [][]byte{[]byte("signed-funding")}, nil
		})
	f.algod.EXPECT().SendRawTransaction(gomock.Any(), []byte("signed-funding")).Return("FUNDTX", nil)
	f.algod.EXPECT().WaitForConfirmation(gomock.Any(), "FUNDTX", gomock.Any()).
		Return(&adapter.ConfirmedTransaction{TxID: "FUNDTX", ConfirmedRound: 40}, nil)

	// a different admin stops the run right after funding
	f.algod.EXPECT().ApplicationGlobalState(gomock.Any(), testAppID).Return(map[string]adapter.TealValue{
		"admin": {Type: 1, Bytes: f.user.Address[:]},
	}, nil)

	_, err := f.client.CreateTitle(context.Background(), sender, landID, metadataURL)

	var authErr *domain.AuthorizationError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, sender, authErr.Address)
	assert.Equal(t, f.user.Address.String(), authErr.Expected)
}

// TestCreateTitle_StillUnderfunded tests a retryable error when funding did not cover the requirement
func TestCreateTitle_StillUnderfunded(t *testing.T) {
	f := newFixture(t)
	sender := f.admin.Address.String()

	f.expectCallerBalance(10_000_000)
	gomock.InOrder(
		f.algod.EXPECT().AccountInformation(gomock.Any(), f.appAddress).Return(nil, adapter.ErrNotFound),
		f.algod.EXPECT().AccountInformation(gomock.Any(), f.appAddress).Return(&domain.Account{Amount: 1000}, nil),
	)
	f.algod.EXPECT().SuggestedParams(gomock.Any()).Return(suggestedParams(), nil)
	f.signer.EXPECT().SignTransactions(gomock.Any(), sender, gomock.Any()).Return([][]byte{[]byte("signed")}, nil)
	f.algod.EXPECT().SendRawTransaction(gomock.Any(), gomock.Any()).Return("FUNDTX", nil)
	f.algod.EXPECT().WaitForConfirmation(gomock.Any(), "FUNDTX", gomock.Any()).
		Return(&adapter.ConfirmedTransaction{TxID: "FUNDTX"}, nil)

	_, err := f.client.CreateTitle(context.Background(), sender, landID, metadataURL)
	assert.ErrorIs(t, err, domain.ErrContractUnderfunded)
}

// TestCreateTitle_WalletRejected tests a rejected signature ends the run before submission
func TestCreateTitle_WalletRejected(t *testing.T) {
	f := newFixture(t)
	sender := f.admin.Address.String()

	f.expectCallerBalance(10_000_000)
	f.expectFundedContract()
	f.expectAdminState()
	f.algod.EXPECT().SuggestedParams(gomock.Any()).Return(suggestedParams(), nil)
	f.signer.EXPECT().SignTransactions(gomock.Any(), sender, gomock.Any()).Return(nil, domain.ErrWalletRejected)

	_, err := f.client.CreateTitle(context.Background(), sender, landID, metadataURL)
	assert.ErrorIs(t, err, domain.ErrWalletRejected)
}

// TestCreateTitle_NoInnerTransactions tests a confirmation without inner transactions is a contract failure
func TestCreateTitle_NoInnerTransactions(t *testing.T) {
	f := newFixture(t)
	sender := f.admin.Address.String()

	f.expectCallerBalance(10_000_000)
	f.expectFundedContract()
	f.expectAdminState()
	f.algod.EXPECT().SuggestedParams(gomock.Any()).Return(suggestedParams(), nil)
	f.signer.EXPECT().SignTransactions(gomock.Any(), sender, gomock.Any()).Return([][]byte{[]byte("signed")}, nil)
	f.algod.EXPECT().SendRawTransaction(gomock.Any(), gomock.Any()).Return("CREATETX", nil)
	f.algod.EXPECT().WaitForConfirmation(gomock.Any(), "CREATETX", gomock.Any()).
		Return(&adapter.ConfirmedTransaction{TxID: "CREATETX", ConfirmedRound: 42}, nil)

	_, err := f.client.CreateTitle(context.Background(), sender, landID, metadataURL)

	assert.ErrorIs(t, err, domain.ErrContractLogic)
	var txErr *domain.TransactionError
	require.True(t, errors.As(err, &txErr))
	assert.Equal(t, "CREATETX", txErr.TxID)
	assert.Equal(t, "https://explorer.test/tx/CREATETX", txErr.ExplorerURL)
}

// TestCreateTitle_SubmitFailure tests unrecognized node errors carry the transaction id and explorer link
func TestCreateTitle_SubmitFailure(t *testing.T) {
	f := newFixture(t)
	sender := f.admin.Address.String()

	f.expectCallerBalance(10_000_000)
	f.expectFundedContract()
	f.expectAdminState()
	f.algod.EXPECT().SuggestedParams(gomock.Any()).Return(suggestedParams(), nil)
	f.signer.EXPECT().SignTransactions(gomock.Any(), sender, gomock.Any()).Return([][]byte{[]byte("signed")}, nil)
	f.algod.EXPECT().SendRawTransaction(gomock.Any(), gomock.Any()).Return("", errors.New("node unavailable"))

	_, err := f.client.CreateTitle(context.Background(), sender, landID, metadataURL)

	var txErr *domain.TransactionError
	require.True(t, errors.As(err, &txErr))
	assert.NotEmpty(t, txErr.TxID)
	assert.Contains(t, txErr.ExplorerURL, txErr.TxID)
	assert.Contains(t, err.Error(), "node unavailable")
}

// TestCreateTitle_AdminNotConfigured tests a contract without an admin entry is reported distinctly
func TestCreateTitle_AdminNotConfigured(t *testing.T) {
	f := newFixture(t)

	f.expectCallerBalance(10_000_000)
	f.expectFundedContract()
	f.algod.EXPECT().ApplicationGlobalState(gomock.Any(), testAppID).Return(map[string]adapter.TealValue{}, nil)

	_, err := f.client.CreateTitle(context.Background(), f.admin.Address.String(), landID, metadataURL)
	assert.ErrorIs(t, err, domain.ErrAdminNotConfigured)
}

func TestRequirements(t *testing.T) {
	assert.Equal(t, uint64(302_000), ledger.CallerRequirement(0))
	assert.Equal(t, uint64(302_000), ledger.CallerRequirement(ledger.BaseMinBalance))
	assert.Equal(t, uint64(502_000), ledger.CallerRequirement(300_000))
	assert.Equal(t, uint64(203_000), ledger.ContractRequirement(0))
}
