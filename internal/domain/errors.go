package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Storage provider errors
var (
	// ErrStorageAuth is returned when the provider rejects the configured credentials
	ErrStorageAuth = errors.New("storage provider rejected credentials")

	// ErrPayloadTooLarge is returned when the provider rejects the upload size
	ErrPayloadTooLarge = errors.New("payload too large for storage provider")

	// ErrRateLimited is returned when the provider throttles the request
	ErrRateLimited = errors.New("storage provider rate limited the request")

	// ErrInvalidFormat is returned when a document cannot be encoded or is refused as malformed
	ErrInvalidFormat = errors.New("invalid document format")

	// ErrContentNotFound is returned when a content identifier cannot be found
	ErrContentNotFound = errors.New("content not found")

	// ErrProviderMisconfigured is returned when a provider cannot be constructed
	ErrProviderMisconfigured = errors.New("storage provider misconfigured")
)

// Ledger errors
var (
	// ErrAssetNotFound is returned when the indexer has no record of an asset
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidTitle is returned when an asset fails structural title validation
	ErrInvalidTitle = errors.New("asset is not a valid land title")

	// ErrContractLogic is returned when a confirmed call carries no inner transactions
	ErrContractLogic = errors.New("contract did not issue the expected inner transactions")

	// ErrAssetIDUnresolved is returned when inner transactions exist but none carries a created asset index
	ErrAssetIDUnresolved = errors.New("could not determine created asset id")

	// ErrReceiverNotOptedIn is returned when the receiver has not opted in to the asset
	ErrReceiverNotOptedIn = errors.New("receiver must opt in to the asset before it can be transferred")

	// ErrContractUnderfunded is returned when the contract balance is still short after funding. Retryable.
	ErrContractUnderfunded = errors.New("contract balance still insufficient after funding")

	// ErrAdminNotConfigured is returned when the contract global state has no admin address
	ErrAdminNotConfigured = errors.New("contract admin address not found in global state")
)

// Wallet and session errors
var (
	// ErrWalletRejected is returned when the user declines to sign
	ErrWalletRejected = errors.New("transaction rejected in wallet")

	// ErrWalletTimeout is returned when the wallet does not answer the signing request in time
	ErrWalletTimeout = errors.New("wallet signing request timed out")

	// ErrWalletOutdated is returned when the wallet app does not support the request
	ErrWalletOutdated = errors.New("wallet app version does not support this request")

	// ErrNoIdentities is returned when the wallet connects without any account
	ErrNoIdentities = errors.New("wallet returned no accounts")

	// ErrNotConnected is returned when an operation needs a connected identity
	ErrNotConnected = errors.New("wallet not connected")

	// ErrEmptySignature is returned when the wallet answers without signed transactions
	ErrEmptySignature = errors.New("wallet returned no signed transactions")
)

// ErrNotImplemented is returned by operations that require manual intervention
var ErrNotImplemented = errors.New("not implemented")

// Party identifies who is short of funds
type Party string

const (
	PartyCaller   Party = "caller"
	PartyContract Party = "contract"
)

const microAlgosPerAlgo = 1_000_000

// InsufficientFundsError reports a balance shortfall with the exact amounts involved
type InsufficientFundsError struct {
	Party     Party
	Address   string
	Balance   uint64
	Required  uint64
	Shortfall uint64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: %s %s has %s ALGO, needs %s ALGO (short by %s ALGO); fund the account and retry",
		e.Party, e.Address, formatAlgo(e.Balance), formatAlgo(e.Required), formatAlgo(e.Shortfall))
}

// NewInsufficientFundsError builds an InsufficientFundsError computing the shortfall
func NewInsufficientFundsError(party Party, address string, balance, required uint64) *InsufficientFundsError {
	var shortfall uint64
	if required > balance {
		shortfall = required - balance
	}
	return &InsufficientFundsError{
		Party:     party,
		Address:   address,
		Balance:   balance,
		Required:  required,
		Shortfall: shortfall,
	}
}

func formatAlgo(micro uint64) string {
	return fmt.Sprintf("%d.%06d", micro/microAlgosPerAlgo, micro%microAlgosPerAlgo)
}

// AuthorizationError reports an address that is not allowed to perform an operation
type AuthorizationError struct {
	Address  string
	Expected string
	Reason   string
}

func (e *AuthorizationError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("unauthorized: %s (address %s, expected %s)", e.Reason, e.Address, e.Expected)
	}
	return fmt.Sprintf("unauthorized: %s (address %s)", e.Reason, e.Address)
}

// StorageError wraps a storage provider failure with the provider and operation
type StorageError struct {
	Provider   string
	Op         string
	StatusCode int
	Err        error
}

func (e *StorageError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("storage %s %s failed with status %d: %v", e.Provider, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("storage %s %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// TransactionError wraps an unrecognized ledger failure with diagnostic context
type TransactionError struct {
	Op          string
	TxID        string
	ExplorerURL string
	Err         error
}

func (e *TransactionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed", e.Op)
	if e.TxID != "" {
		fmt.Fprintf(&b, " (tx %s", e.TxID)
		if e.ExplorerURL != "" {
			fmt.Fprintf(&b, ", %s", e.ExplorerURL)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// TitleValidationError lists every structural check an asset failed
type TitleValidationError struct {
	AssetID  uint64
	Failures []string
}

func (e *TitleValidationError) Error() string {
	return fmt.Sprintf("asset %d is not a valid land title: %s", e.AssetID, strings.Join(e.Failures, "; "))
}

func (e *TitleValidationError) Unwrap() error {
	return ErrInvalidTitle
}
