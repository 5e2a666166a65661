package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/common/models"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// TestFromPendingResponse tests inner transactions are converted recursively
func TestFromPendingResponse(t *testing.T) {
	resp := models.PendingTransactionInfoResponse{
		ConfirmedRound:   42,
		ApplicationIndex: 7,
		Transaction: types.SignedTxn{Txn: types.Transaction{
			Type: types.ApplicationCallTx,
		}},
		InnerTxns: []models.PendingTransactionResponse{
			{
				AssetIndex: 1001,
				Transaction: types.SignedTxn{Txn: types.Transaction{
					Type: types.AssetConfigTx,
				}},
			},
			{
				Transaction: types.SignedTxn{Txn: types.Transaction{
					Type:                  types.AssetTransferTx,
					AssetTransferTxnFields: types.AssetTransferTxnFields{XferAsset: 1001},
				}},
			},
		},
	}

	confirmed := fromPendingResponse(resp)
	assert.Equal(t, "appl", confirmed.Type)
	assert.Equal(t, uint64(42), confirmed.ConfirmedRound)
	assert.Equal(t, uint64(7), confirmed.ApplicationIndex)
	require.Len(t, confirmed.InnerTxns, 2)
	assert.Equal(t, "acfg", confirmed.InnerTxns[0].Type)
	assert.Equal(t, uint64(1001), confirmed.InnerTxns[0].AssetIndex)
	assert.Equal(t, "axfer", confirmed.InnerTxns[1].Type)
	assert.Equal(t, uint64(1001), confirmed.InnerTxns[1].XferAsset)
}

// TestIndexer_LookupAssetTransactions tests history pages are followed by next token
func TestIndexer_LookupAssetTransactions(t *testing.T) {
	var tokens []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/assets/1001/transactions", r.URL.Path)
		next := r.URL.Query().Get("next")
		tokens = append(tokens, next)

		w.Header().Set("Content-Type", "application/json")
		switch next {
		case "":
			_, _ = w.Write([]byte(`{"current-round":10,"next-token":"page-2","transactions":[
				{"id":"TX1","tx-type":"axfer","sender":"CREATOR","confirmed-round":3,
				 "asset-transfer-transaction":{"asset-id":1001,"amount":1,"receiver":"BUYER"}}]}`))
		case "page-2":
			_, _ = w.Write([]byte(`{"current-round":10,"next-token":"page-3","transactions":[
				{"id":"TX2","tx-type":"axfer","sender":"BUYER","confirmed-round":5,
				 "asset-transfer-transaction":{"asset-id":1001,"amount":1,"receiver":"HEIR"}}]}`))
		default:
			_, _ = w.Write([]byte(`{"current-round":10,"transactions":[]}`))
		}
	}))
	defer server.Close()

	idx, err := NewIndexer(server.URL, "")
	require.NoError(t, err)

	txs, err := idx.LookupAssetTransactions(context.Background(), 1001)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "page-2", "page-3"}, tokens)
	require.Len(t, txs, 2)
	assert.Equal(t, "TX1", txs[0].ID)
	assert.Equal(t, domain.TransactionTypeAssetTransfer, txs[1].Type)
	assert.Equal(t, "HEIR", txs[1].Receiver)
	assert.Equal(t, uint64(1001), txs[1].AssetID)
}
