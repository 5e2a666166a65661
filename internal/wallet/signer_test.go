package wallet_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/mocks"
	"github.com/ardhichain/ardhi-registry/internal/wallet"
)

func testParams() types.SuggestedParams {
	return types.SuggestedParams{
		Fee:             0,
		FlatFee:         true,
		FirstRoundValid: 1000,
		LastRoundValid:  2000,
		GenesisID:       "testnet-v1.0",
		GenesisHash:     make([]byte, 32),
		MinFee:          1000,
	}
}

func paymentTxn(t *testing.T, from, to string) types.Transaction {
	t.Helper()
	sp := testParams()
	sp.Fee = 1000
	tx, err := transaction.MakePaymentTxn(from, to, 1000, nil, "", sp)
	require.NoError(t, err)
	return tx
}

// TestSigner_SignTransactions tests transactions are offered as one group and the response is flattened
func TestSigner_SignTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWallet(ctrl)
	signer := wallet.NewSigner(mockWallet, time.Second)

	account := crypto.GenerateAccount()
	other := crypto.GenerateAccount()
	txns := []types.Transaction{
		paymentTxn(t, account.Address.String(), other.Address.String()),
		paymentTxn(t, account.Address.String(), other.Address.String()),
	}

	mockWallet.EXPECT().
		SignTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, groups [][]wallet.SignRequest) (any, error) {
			require.Len(t, groups, 1)
			require.Len(t, groups[0], 2)
			for i, req := range groups[0] {
				assert.Equal(t, []string{account.Address.String()}, req.Signers)
				assert.Equal(t, msgpack.Encode(txns[i]), req.Txn)
			}
			return []any{[]any{b64("stx-1"), b64("stx-2")}}, nil
		})

	signed, err := signer.SignTransactions(context.Background(), account.Address.String(), txns)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("stx-1"), []byte("stx-2")}, signed)
}

func TestSigner_SignTransactions_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWallet(ctrl)
	signer := wallet.NewSigner(mockWallet, time.Second)

	mockWallet.EXPECT().SignTransactions(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("User rejected the request"))

	_, err := signer.SignTransactions(context.Background(), "ADDR", nil)
	assert.ErrorIs(t, err, domain.ErrWalletRejected)
}

func TestSigner_SignTransactions_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWallet(ctrl)
	signer := wallet.NewSigner(mockWallet, time.Second)

	account := crypto.GenerateAccount()
	txns := []types.Transaction{paymentTxn(t, account.Address.String(), account.Address.String())}

	mockWallet.EXPECT().SignTransactions(gomock.Any(), gomock.Any()).Return([]any{nil}, nil)

	_, err := signer.SignTransactions(context.Background(), account.Address.String(), txns)
	assert.ErrorIs(t, err, domain.ErrEmptySignature)
}

func TestSigner_SignTransactions_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWallet(ctrl)
	signer := wallet.NewSigner(mockWallet, 10*time.Millisecond)

	mockWallet.EXPECT().SignTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, groups [][]wallet.SignRequest) (any, error) {
			<-ctx.Done()
			return nil, errors.New("bridge gave up")
		})

	_, err := signer.SignTransactions(context.Background(), "ADDR", nil)
	assert.ErrorIs(t, err, domain.ErrWalletTimeout)
}

// TestSigner_SignTransactions_CallerCanceled tests a canceled caller is not reported as a wallet timeout
func TestSigner_SignTransactions_CallerCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockWallet := mocks.NewMockWallet(ctrl)
	signer := wallet.NewSigner(mockWallet, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	mockWallet.EXPECT().SignTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, groups [][]wallet.SignRequest) (any, error) {
			cancel()
			<-ctx.Done()
			return nil, errors.New("bridge gave up")
		})

	_, err := signer.SignTransactions(ctx, "ADDR", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrWalletTimeout)
}

// TestMnemonicWallet tests the local wallet signs only for its own account
func TestMnemonicWallet(t *testing.T) {
	account := crypto.GenerateAccount()
	phrase, err := mnemonic.FromPrivateKey(account.PrivateKey)
	require.NoError(t, err)

	w, err := wallet.NewMnemonicWallet(phrase)
	require.NoError(t, err)
	assert.Equal(t, account.Address.String(), w.Address())

	accounts, err := w.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{account.Address.String()}, accounts)

	tx := paymentTxn(t, account.Address.String(), account.Address.String())
	signer := wallet.NewSigner(w, time.Second)

	signed, err := signer.SignTransactions(context.Background(), account.Address.String(), []types.Transaction{tx})
	require.NoError(t, err)
	require.Len(t, signed, 1)

	var stx types.SignedTxn
	require.NoError(t, msgpack.Decode(signed[0], &stx))
	assert.Equal(t, tx.Sender, stx.Txn.Sender)
	assert.Equal(t, tx.Amount, stx.Txn.Amount)
	assert.NotEqual(t, types.Signature{}, stx.Sig)

	_, err = signer.SignTransactions(context.Background(), crypto.GenerateAccount().Address.String(), []types.Transaction{tx})
	assert.ErrorIs(t, err, domain.ErrEmptySignature)
}

func TestNewMnemonicWallet_Invalid(t *testing.T) {
	_, err := wallet.NewMnemonicWallet("not a valid phrase")
	assert.Error(t, err)
}
