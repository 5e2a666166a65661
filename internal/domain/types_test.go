package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsset_IsNFT(t *testing.T) {
	tests := []struct {
		name     string
		asset    *Asset
		expected bool
	}{
		{
			name:     "single indivisible unit",
			asset:    &Asset{Total: 1, Decimals: 0},
			expected: true,
		},
		{
			name:     "fungible supply",
			asset:    &Asset{Total: 1000, Decimals: 0},
			expected: false,
		},
		{
			name:     "fractional single unit",
			asset:    &Asset{Total: 1, Decimals: 2},
			expected: false,
		},
		{
			name:     "nil asset",
			asset:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.asset.IsNFT())
		})
	}
}

func TestAccount_Holdings(t *testing.T) {
	account := &Account{
		Address: "OWNER",
		Assets: []AssetHolding{
			{AssetID: 10, Amount: 1},
			{AssetID: 20, Amount: 0},
		},
	}

	tests := []struct {
		name    string
		assetID uint64
		holds   bool
		optedIn bool
	}{
		{name: "held asset", assetID: 10, holds: true, optedIn: true},
		{name: "opted in with zero balance", assetID: 20, holds: false, optedIn: true},
		{name: "unknown asset", assetID: 30, holds: false, optedIn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.holds, account.HoldsAsset(tt.assetID))
			assert.Equal(t, tt.optedIn, account.OptedIn(tt.assetID))
		})
	}

	var missing *Account
	assert.False(t, missing.HoldsAsset(10))
	assert.False(t, missing.OptedIn(10))
}

func TestLedgerTransaction_IsAssetTransfer(t *testing.T) {
	tests := []struct {
		name     string
		tx       LedgerTransaction
		expected bool
	}{
		{
			name:     "transfer",
			tx:       LedgerTransaction{Type: TransactionTypeAssetTransfer, Amount: 1, Receiver: "BUYER"},
			expected: true,
		},
		{
			name:     "opt-in",
			tx:       LedgerTransaction{Type: TransactionTypeAssetTransfer, Amount: 0, Receiver: "BUYER"},
			expected: false,
		},
		{
			name:     "missing receiver",
			tx:       LedgerTransaction{Type: TransactionTypeAssetTransfer, Amount: 1},
			expected: false,
		},
		{
			name:     "payment",
			tx:       LedgerTransaction{Type: TransactionTypePayment, Amount: 1, Receiver: "BUYER"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tx.IsAssetTransfer())
		})
	}
}

func TestMigrationReport_Mappings(t *testing.T) {
	report := &MigrationReport{
		SuccessCount: 2,
		FailureCount: 1,
		Results: []MigrationResult{
			{Success: true, OriginalCID: "QmA", NewCID: "bafyA"},
			{Success: false, OriginalCID: "QmB", Error: "not found"},
			{Success: true, OriginalCID: "QmC", NewCID: "bafyC"},
		},
	}

	assert.Equal(t, map[string]string{"QmA": "bafyA", "QmC": "bafyC"}, report.Mappings())
	assert.Empty(t, (&MigrationReport{}).Mappings())
}
