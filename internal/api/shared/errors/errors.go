package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest        ErrorCode = "bad_request"
	ErrCodeNotFound          ErrorCode = "not_found"
	ErrCodeValidationFailed  ErrorCode = "validation_failed"
	ErrCodeUnauthorized      ErrorCode = "unauthorized"
	ErrCodeForbidden         ErrorCode = "forbidden"
	ErrCodeInvalidTitle      ErrorCode = "invalid_title"
	ErrCodeInsufficientFunds ErrorCode = "insufficient_funds"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeStorageError  ErrorCode = "storage_error"
	ErrCodeLedgerError   ErrorCode = "ledger_error"
	ErrCodeUnavailable   ErrorCode = "service_unavailable"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Status  int       `json:"-"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

func newAPIError(status int, code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Status:  status,
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newAPIError(http.StatusBadRequest, ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newAPIError(http.StatusNotFound, ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newAPIError(http.StatusBadRequest, ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newAPIError(http.StatusUnauthorized, ErrCodeUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *APIError {
	return newAPIError(http.StatusForbidden, ErrCodeForbidden, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newAPIError(http.StatusInternalServerError, ErrCodeInternalError, message, details)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return newAPIError(http.StatusInternalServerError, ErrCodeDatabaseError, message, details)
}

func NewUnavailableError(message string, details ...string) *APIError {
	return newAPIError(http.StatusServiceUnavailable, ErrCodeUnavailable, message, details)
}

// FromError maps a registry error onto an APIError. message is used for errors without a specific mapping.
func FromError(err error, message string) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var (
		validationErr *domain.TitleValidationError
		fundsErr      *domain.InsufficientFundsError
		authErr       *domain.AuthorizationError
		storageErr    *domain.StorageError
		txErr         *domain.TransactionError
	)

	switch {
	case errors.As(err, &validationErr):
		return newAPIError(http.StatusUnprocessableEntity, ErrCodeInvalidTitle, "Asset is not a valid land title", validationErr.Failures)
	case errors.Is(err, domain.ErrAssetNotFound), errors.Is(err, domain.ErrContentNotFound):
		return NewNotFoundError("Resource not found", err.Error())
	case errors.Is(err, domain.ErrInvalidTitle), errors.Is(err, domain.ErrInvalidFormat):
		return newAPIError(http.StatusUnprocessableEntity, ErrCodeInvalidTitle, "Invalid title", []string{err.Error()})
	case errors.As(err, &fundsErr):
		return newAPIError(http.StatusPaymentRequired, ErrCodeInsufficientFunds, "Insufficient funds", []string{fundsErr.Error()})
	case errors.As(err, &authErr):
		return NewForbiddenError("Operation not permitted", authErr.Error())
	case errors.Is(err, domain.ErrNotConnected):
		return NewUnauthorizedError("Wallet not connected")
	case errors.Is(err, domain.ErrRateLimited):
		return newAPIError(http.StatusTooManyRequests, ErrCodeStorageError, "Storage provider rate limited the request", []string{err.Error()})
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return newAPIError(http.StatusRequestEntityTooLarge, ErrCodeStorageError, "Payload too large", []string{err.Error()})
	case errors.Is(err, domain.ErrProviderMisconfigured):
		return NewUnavailableError("Storage provider unavailable", err.Error())
	case errors.As(err, &storageErr):
		return newAPIError(http.StatusBadGateway, ErrCodeStorageError, "Storage provider error", []string{storageErr.Error()})
	case errors.As(err, &txErr):
		return newAPIError(http.StatusBadGateway, ErrCodeLedgerError, "Ledger transaction failed", []string{txErr.Error()})
	case errors.Is(err, domain.ErrNotImplemented):
		return newAPIError(http.StatusNotImplemented, ErrCodeInternalError, "Not implemented", []string{err.Error()})
	default:
		return NewInternalError(message)
	}
}
