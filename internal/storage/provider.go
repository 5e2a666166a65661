package storage

import (
	"context"
	"strings"
	"time"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// ProviderType identifies a storage backend
type ProviderType string

const (
	ProviderPinata      ProviderType = "pinata"
	ProviderWeb3Storage ProviderType = "web3storage"
)

// DefaultProviderType is used when no or an unknown provider is configured
const DefaultProviderType = ProviderPinata

// ParseProviderType maps a configuration value onto a provider type.
// ok is false when the value names no known backend.
func ParseProviderType(s string) (ProviderType, bool) {
	switch ProviderType(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderPinata:
		return ProviderPinata, true
	case ProviderWeb3Storage, "web3.storage", "w3s":
		return ProviderWeb3Storage, true
	default:
		return DefaultProviderType, false
	}
}

// Provider is a content-addressed storage backend.
//
//go:generate mockgen -source=provider.go -destination=../mocks/storage.go -package=mocks -mock_names=Provider=MockStorageProvider
type Provider interface {
	// Name returns the backend type
	Name() ProviderType

	// UploadFile stores raw bytes and returns the content identifier
	UploadFile(ctx context.Context, name string, data []byte) (string, error)

	// UploadJSON stores a JSON document and returns the content identifier
	UploadJSON(ctx context.Context, name string, doc any) (string, error)

	// FetchJSON retrieves the document stored under cid into out
	FetchJSON(ctx context.Context, cid string, out any) error

	// GetFileURL returns the public gateway URL for cid without any network access
	GetFileURL(cid string) string

	// ValidateConnection probes the backend with the configured credentials.
	// It reports false on any failure and never returns an error.
	ValidateConnection(ctx context.Context) bool
}

// Timeouts bounds each kind of provider call
type Timeouts struct {
	Upload time.Duration
	Fetch  time.Duration
	Health time.Duration
}

// DefaultTimeouts returns the per-operation timeouts used when none are configured
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Upload: 60 * time.Second,
		Fetch:  30 * time.Second,
		Health: 10 * time.Second,
	}
}

func (t Timeouts) withDefaults() Timeouts {
	d := DefaultTimeouts()
	if t.Upload <= 0 {
		t.Upload = d.Upload
	}
	if t.Fetch <= 0 {
		t.Fetch = d.Fetch
	}
	if t.Health <= 0 {
		t.Health = d.Health
	}
	return t
}

// gatewayURL joins a gateway base and a content identifier into <gateway>/ipfs/<cid>
func gatewayURL(gateway, cid string) string {
	cid = strings.TrimPrefix(strings.TrimSpace(cid), domain.IPFS_SCHEME)
	cid = strings.TrimLeft(cid, "/")
	cid = strings.TrimPrefix(cid, "ipfs/")
	return strings.TrimRight(gateway, "/") + "/ipfs/" + cid
}

// CIDFromURL extracts the content identifier from an ipfs:// URI or a gateway URL.
// Any other input is returned unchanged.
func CIDFromURL(u string) string {
	u = strings.TrimSpace(u)
	if strings.HasPrefix(u, domain.IPFS_SCHEME) {
		return strings.TrimLeft(strings.TrimPrefix(u, domain.IPFS_SCHEME), "/")
	}
	if idx := strings.Index(u, "/ipfs/"); idx >= 0 {
		cid := u[idx+len("/ipfs/"):]
		if end := strings.IndexAny(cid, "?#"); end >= 0 {
			cid = cid[:end]
		}
		return cid
	}
	return u
}
