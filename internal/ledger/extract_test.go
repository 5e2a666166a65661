package ledger

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
)

func abiReturnLog(v uint64) []byte {
	entry := append([]byte{}, abiReturnPrefix...)
	return binary.BigEndian.AppendUint64(entry, v)
}

// TestExtractCreatedAssetID tests each source of the created asset id in priority order
func TestExtractCreatedAssetID(t *testing.T) {
	tests := []struct {
		name      string
		confirmed *adapter.ConfirmedTransaction
		want      uint64
		wantErr   error
	}{
		{
			name:      "nil confirmation",
			confirmed: nil,
			wantErr:   domain.ErrContractLogic,
		},
		{
			name:      "no inner transactions",
			confirmed: &adapter.ConfirmedTransaction{Logs: [][]byte{abiReturnLog(5)}},
			wantErr:   domain.ErrContractLogic,
		},
		{
			name: "inner asset config result",
			confirmed: &adapter.ConfirmedTransaction{InnerTxns: []adapter.ConfirmedTransaction{
				{Type: "acfg", AssetIndex: 101},
				{Type: "axfer", XferAsset: 999},
			}},
			want: 101,
		},
		{
			name: "asset config result preferred over earlier transfer",
			confirmed: &adapter.ConfirmedTransaction{InnerTxns: []adapter.ConfirmedTransaction{
				{Type: "axfer", XferAsset: 999},
				{Type: "acfg", AssetIndex: 102},
			}},
			want: 102,
		},
		{
			name: "inner transfer asset",
			confirmed: &adapter.ConfirmedTransaction{InnerTxns: []adapter.ConfirmedTransaction{
				{Type: "acfg"},
				{Type: "axfer", XferAsset: 103},
			}},
			want: 103,
		},
		{
			name: "abi return log",
			confirmed: &adapter.ConfirmedTransaction{
				InnerTxns: []adapter.ConfirmedTransaction{{Type: "acfg"}},
				Logs:      [][]byte{[]byte("noise"), abiReturnLog(104)},
			},
			want: 104,
		},
		{
			name: "unresolved",
			confirmed: &adapter.ConfirmedTransaction{
				InnerTxns: []adapter.ConfirmedTransaction{{Type: "acfg"}, {Type: "pay"}},
				Logs:      [][]byte{[]byte("noise")},
			},
			wantErr: domain.ErrAssetIDUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractCreatedAssetID(tt.confirmed)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUint64Return(t *testing.T) {
	id, ok := decodeUint64Return([][]byte{abiReturnLog(7), abiReturnLog(8)})
	assert.True(t, ok)
	assert.Equal(t, uint64(8), id)

	_, ok = decodeUint64Return([][]byte{append(abiReturnLog(7), 0)})
	assert.False(t, ok)

	_, ok = decodeUint64Return(nil)
	assert.False(t, ok)
}

func TestCreateTitleArgs(t *testing.T) {
	args, err := createTitleArgs("LR/1", "ipfs://cid")
	require.NoError(t, err)
	require.Len(t, args, 3)

	assert.Len(t, args[0], 4)
	assert.Equal(t, []byte{0, 4, 'L', 'R', '/', '1'}, args[1])
	assert.Equal(t, append([]byte{0, 10}, "ipfs://cid"...), args[2])
}
