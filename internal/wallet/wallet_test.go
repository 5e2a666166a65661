package wallet_test

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/wallet"
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

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// TestNormalize tests every response shape wallets are known to return flattens to the same list
func TestNormalize(t *testing.T) {
	want := [][]byte{[]byte("signed-1"), []byte("signed-2")}

	tests := []struct {
		name string
		raw  any
	}{
		{"byte slices", [][]byte{[]byte("signed-1"), []byte("signed-2")}},
		{"base64 strings", []string{b64("signed-1"), b64("signed-2")}},
		{"nested groups", []any{[]any{b64("signed-1"), b64("signed-2")}}},
		{"mixed with nulls", []any{nil, []any{[]byte("signed-1"), nil}, []any{[]any{b64("signed-2")}}}},
		{"decoded json", []any{[]any{b64("signed-1")}, b64("signed-2")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wallet.Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestNormalize_Single(t *testing.T) {
	got, err := wallet.Normalize([]byte("signed"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("signed")}, got)

	got, err = wallet.Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNormalize_Malformed(t *testing.T) {
	_, err := wallet.Normalize([]any{42})
	assert.ErrorIs(t, err, wallet.ErrMalformedResponse)

	_, err = wallet.Normalize("not base64 !!")
	assert.ErrorIs(t, err, wallet.ErrMalformedResponse)
}

// TestClassifyError tests wallet failure text maps onto the wallet sentinels
func TestClassifyError(t *testing.T) {
	tests := []struct {
		msg  string
		want error
	}{
		{"User Rejected Request", domain.ErrWalletRejected},
		{"Request cancelled by user", domain.ErrWalletRejected},
		{"signing request timed out", domain.ErrWalletTimeout},
		{"Method not supported by this wallet version", domain.ErrWalletOutdated},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			err := wallet.ClassifyError(errors.New(tt.msg))
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	other := errors.New("bridge exploded")
	assert.Equal(t, other, wallet.ClassifyError(other))
	assert.ErrorIs(t, wallet.ClassifyError(context.DeadlineExceeded), domain.ErrWalletTimeout)
	assert.NoError(t, wallet.ClassifyError(nil))
}
