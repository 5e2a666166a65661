package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/ardhichain/ardhi-registry/internal/api/shared/errors"
	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// TestFromError tests registry errors map onto the expected status and code
func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{
			name:       "asset not found",
			err:        fmt.Errorf("%w: 42", domain.ErrAssetNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   apierrors.ErrCodeNotFound,
		},
		{
			name:       "title validation",
			err:        &domain.TitleValidationError{AssetID: 42, Failures: []string{"decimals is 2, expected 0"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apierrors.ErrCodeInvalidTitle,
		},
		{
			name:       "insufficient funds",
			err:        domain.NewInsufficientFundsError(domain.PartyCaller, "ADDR", 1, 2),
			wantStatus: http.StatusPaymentRequired,
			wantCode:   apierrors.ErrCodeInsufficientFunds,
		},
		{
			name:       "authorization",
			err:        &domain.AuthorizationError{Address: "ADDR", Reason: "only the admin can create titles"},
			wantStatus: http.StatusForbidden,
			wantCode:   apierrors.ErrCodeForbidden,
		},
		{
			name:       "rate limited storage",
			err:        &domain.StorageError{Provider: "pinata", Op: "upload", StatusCode: 429, Err: domain.ErrRateLimited},
			wantStatus: http.StatusTooManyRequests,
			wantCode:   apierrors.ErrCodeStorageError,
		},
		{
			name:       "generic storage",
			err:        &domain.StorageError{Provider: "pinata", Op: "upload", StatusCode: 500, Err: errors.New("boom")},
			wantStatus: http.StatusBadGateway,
			wantCode:   apierrors.ErrCodeStorageError,
		},
		{
			name:       "misconfigured provider",
			err:        &domain.StorageError{Provider: "web3storage", Op: "create", Err: domain.ErrProviderMisconfigured},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   apierrors.ErrCodeUnavailable,
		},
		{
			name:       "ledger transaction",
			err:        &domain.TransactionError{Op: "create title", TxID: "TX", Err: errors.New("logic eval error")},
			wantStatus: http.StatusBadGateway,
			wantCode:   apierrors.ErrCodeLedgerError,
		},
		{
			name:       "unknown",
			err:        errors.New("something odd"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierrors.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := apierrors.FromError(tt.err, "fallback")
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

// TestFromError_Details tests failure lists and fallbacks are carried into the body
func TestFromError_Details(t *testing.T) {
	apiErr := apierrors.FromError(&domain.TitleValidationError{Failures: []string{"a", "b"}}, "fallback")
	assert.Equal(t, "a, b", apiErr.Details)

	apiErr = apierrors.FromError(errors.New("hidden"), "Failed to verify title")
	assert.Equal(t, "Failed to verify title", apiErr.Message)
	assert.Empty(t, apiErr.Details)

	existing := apierrors.NewNotFoundError("Migration run not found", "01J")
	assert.Same(t, existing, apierrors.FromError(fmt.Errorf("wrapped: %w", existing), "fallback"))
}

// TestAPIError_Error tests the error string is the JSON body
func TestAPIError_Error(t *testing.T) {
	apiErr := apierrors.NewBadRequestError("Invalid asset id", "abc")
	assert.JSONEq(t, `{"code":"bad_request","message":"Invalid asset id","details":"abc"}`, apiErr.Error())
}
