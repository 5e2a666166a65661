package ledger

import (
	"fmt"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// extractCreatedAssetID finds the asset minted by a confirmed create_title call.
// Sources are tried in order: an inner asset config result, the asset of the
// contract's inner opt-in transfer, then the ABI return value logged by the call.
func extractCreatedAssetID(confirmed *adapter.ConfirmedTransaction) (uint64, error) {
	if confirmed == nil || len(confirmed.InnerTxns) == 0 {
		return 0, domain.ErrContractLogic
	}

	for _, inner := range confirmed.InnerTxns {
		if inner.AssetIndex != 0 {
			return inner.AssetIndex, nil
		}
	}

	for _, inner := range confirmed.InnerTxns {
		if inner.Type == string(domain.TransactionTypeAssetTransfer) && inner.XferAsset != 0 {
			return inner.XferAsset, nil
		}
	}

	if id, ok := decodeUint64Return(confirmed.Logs); ok && id != 0 {
		return id, nil
	}

	return 0, fmt.Errorf("%w: %d inner transactions carry no asset index", domain.ErrAssetIDUnresolved, len(confirmed.InnerTxns))
}
