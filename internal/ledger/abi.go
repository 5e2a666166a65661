package ledger

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/algorand/go-algorand-sdk/v2/abi"
	"github.com/algorand/go-algorand-sdk/v2/types"
)

// Registry contract method signatures
const (
	MethodCreateTitle        = "create_title(string,string)uint64"
	MethodAdminTransferTitle = "admin_transfer_title(uint64,address)void"
	MethodUserTransferTitle  = "user_transfer_title(uint64,address)void"
)

// abiReturnPrefix marks the log entry carrying an ABI method's return value
var abiReturnPrefix = []byte{0x15, 0x1f, 0x7c, 0x75}

func methodSelector(signature string) ([]byte, error) {
	method, err := abi.MethodFromSignature(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid method signature %q: %w", signature, err)
	}
	return method.GetSelector(), nil
}

func encodeArg(abiType string, value any) ([]byte, error) {
	t, err := abi.TypeOf(abiType)
	if err != nil {
		return nil, fmt.Errorf("invalid abi type %q: %w", abiType, err)
	}
	encoded, err := t.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s argument: %w", abiType, err)
	}
	return encoded, nil
}

func encodeAddressArg(address string) ([]byte, error) {
	addr, err := types.DecodeAddress(address)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", address, err)
	}
	return addr[:], nil
}

// createTitleArgs encodes the application arguments of create_title
func createTitleArgs(landID, metadataURL string) ([][]byte, error) {
	selector, err := methodSelector(MethodCreateTitle)
	if err != nil {
		return nil, err
	}
	land, err := encodeArg("string", landID)
	if err != nil {
		return nil, err
	}
	url, err := encodeArg("string", metadataURL)
	if err != nil {
		return nil, err
	}
	return [][]byte{selector, land, url}, nil
}

// transferArgs encodes the application arguments of the (uint64,address) transfer methods
func transferArgs(signature string, assetID uint64, receiver string) ([][]byte, error) {
	selector, err := methodSelector(signature)
	if err != nil {
		return nil, err
	}
	id, err := encodeArg("uint64", assetID)
	if err != nil {
		return nil, err
	}
	to, err := encodeAddressArg(receiver)
	if err != nil {
		return nil, err
	}
	return [][]byte{selector, id, to}, nil
}

// decodeUint64Return reads a uint64 ABI return value from the last matching log entry
func decodeUint64Return(logs [][]byte) (uint64, bool) {
	for i := len(logs) - 1; i >= 0; i-- {
		entry := logs[i]
		if len(entry) == len(abiReturnPrefix)+8 && bytes.HasPrefix(entry, abiReturnPrefix) {
			return binary.BigEndian.Uint64(entry[len(abiReturnPrefix):]), true
		}
	}
	return 0, false
}
