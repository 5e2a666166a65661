package storage

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// wrapError converts a transport failure into a StorageError whose chain carries the taxonomy sentinel
func wrapError(provider ProviderType, op string, err error) error {
	if err == nil {
		return nil
	}

	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		return err
	}

	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return &domain.StorageError{Provider: string(provider), Op: op, Err: err}
	}

	return &domain.StorageError{
		Provider:   string(provider),
		Op:         op,
		StatusCode: statusErr.StatusCode,
		Err:        classifyStatus(statusErr.StatusCode, err),
	}
}

func classifyStatus(status int, err error) error {
	var sentinel error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = domain.ErrStorageAuth
	case http.StatusRequestEntityTooLarge:
		sentinel = domain.ErrPayloadTooLarge
	case http.StatusTooManyRequests:
		sentinel = domain.ErrRateLimited
	case http.StatusNotFound:
		sentinel = domain.ErrContentNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		sentinel = domain.ErrInvalidFormat
	default:
		return err
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

func invalidFormat(provider ProviderType, op string, err error) error {
	return &domain.StorageError{
		Provider: string(provider),
		Op:       op,
		Err:      fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err),
	}
}

func misconfigured(provider ProviderType, reason string) error {
	return fmt.Errorf("%w: %s: %s", domain.ErrProviderMisconfigured, provider, reason)
}
