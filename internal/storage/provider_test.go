package storage_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/storage"
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

func newHTTPClient() adapter.HTTPClient {
	return adapter.NewHTTPClient(5*time.Second,
		adapter.WithInitialRetryInterval(time.Millisecond),
		adapter.WithRetryWindow(20*time.Millisecond))
}

func newProviders(t *testing.T, f *fakeIPFS) map[storage.ProviderType]storage.Provider {
	t.Helper()

	pinata, err := storage.NewPinata(storage.PinataConfig{
		JWT:        "secret",
		APIURL:     f.URL(),
		GatewayURL: f.URL() + "/",
	}, storage.Timeouts{}, newHTTPClient(), adapter.NewJSON())
	require.NoError(t, err)

	w3s, err := storage.NewWeb3Storage(storage.Web3StorageConfig{
		Token:      "secret",
		APIURL:     f.URL(),
		GatewayURL: f.URL(),
	}, storage.Timeouts{}, newHTTPClient(), adapter.NewJSON())
	require.NoError(t, err)

	return map[storage.ProviderType]storage.Provider{
		storage.ProviderPinata:      pinata,
		storage.ProviderWeb3Storage: w3s,
	}
}

func sampleMetadata() domain.TitleMetadata {
	return domain.TitleMetadata{
		LandID:       "LR/2024/001",
		Location:     "Kilimani, Nairobi",
		Area:         "0.25 ha",
		Municipality: "Nairobi City County",
		DocumentHash: "bafydocument",
		CreatedAt:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// TestProvider_JSONRoundTrip tests that a document uploaded through either backend reads back unchanged
func TestProvider_JSONRoundTrip(t *testing.T) {
	f := newFakeIPFS(t, "secret")
	ctx := context.Background()

	for name, p := range newProviders(t, f) {
		t.Run(string(name), func(t *testing.T) {
			doc := sampleMetadata()

			cid, err := p.UploadJSON(ctx, "metadata-LR-2024-001.json", doc)
			require.NoError(t, err)
			assert.NotEmpty(t, cid)

			var got domain.TitleMetadata
			require.NoError(t, p.FetchJSON(ctx, cid, &got))
			assert.Equal(t, doc, got)

			// ipfs:// prefixed identifiers resolve to the same document
			var again domain.TitleMetadata
			require.NoError(t, p.FetchJSON(ctx, domain.IPFS_SCHEME+cid, &again))
			assert.Equal(t, doc, again)
		})
	}
}

// TestProvider_UploadFile tests raw uploads land on the gateway byte for byte
func TestProvider_UploadFile(t *testing.T) {
	f := newFakeIPFS(t, "secret")
	ctx := context.Background()
	client := newHTTPClient()

	for name, p := range newProviders(t, f) {
		t.Run(string(name), func(t *testing.T) {
			data := []byte("%PDF-1.4 title deed scan")

			cid, err := p.UploadFile(ctx, "deed.pdf", data)
			require.NoError(t, err)

			got, err := client.GetBytes(ctx, p.GetFileURL(cid), nil)
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

// TestProvider_GetFileURL tests that gateway URLs are built without network access
func TestProvider_GetFileURL(t *testing.T) {
	pinata, err := storage.NewPinata(storage.PinataConfig{JWT: "jwt", GatewayURL: "https://gateway.example/"},
		storage.Timeouts{}, newHTTPClient(), adapter.NewJSON())
	require.NoError(t, err)

	w3s, err := storage.NewWeb3Storage(storage.Web3StorageConfig{Token: "token"},
		storage.Timeouts{}, newHTTPClient(), adapter.NewJSON())
	require.NoError(t, err)

	assert.Equal(t, "https://gateway.example/ipfs/bafyabc", pinata.GetFileURL("bafyabc"))
	assert.Equal(t, "https://gateway.example/ipfs/bafyabc", pinata.GetFileURL("ipfs://bafyabc"))
	assert.Equal(t, pinata.GetFileURL("bafyabc"), pinata.GetFileURL("bafyabc"))
	assert.Equal(t, "https://w3s.link/ipfs/bafyabc", w3s.GetFileURL("bafyabc"))
}

// TestProvider_ValidateConnection tests the health probe reports true only for accepted credentials
func TestProvider_ValidateConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		f := newFakeIPFS(t, "secret")
		for _, p := range newProviders(t, f) {
			assert.True(t, p.ValidateConnection(ctx))
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		f := newFakeIPFS(t, "other")
		for _, p := range newProviders(t, f) {
			assert.False(t, p.ValidateConnection(ctx))
		}
	})

	t.Run("unreachable backend", func(t *testing.T) {
		p, err := storage.NewWeb3Storage(storage.Web3StorageConfig{Token: "t", APIURL: "http://127.0.0.1:1"},
			storage.Timeouts{Health: time.Second}, newHTTPClient(), adapter.NewJSON())
		require.NoError(t, err)
		assert.False(t, p.ValidateConnection(ctx))
	})
}

// TestProvider_ErrorTaxonomy tests that backend status codes map onto the storage sentinels
func TestProvider_ErrorTaxonomy(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrStorageAuth},
		{http.StatusForbidden, domain.ErrStorageAuth},
		{http.StatusRequestEntityTooLarge, domain.ErrPayloadTooLarge},
		{http.StatusTooManyRequests, domain.ErrRateLimited},
		{http.StatusUnprocessableEntity, domain.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			f := newFakeIPFS(t, "secret")
			f.failWith(tt.status)

			for _, p := range newProviders(t, f) {
				_, err := p.UploadJSON(ctx, "doc.json", sampleMetadata())
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.want), "%s: %v", p.Name(), err)

				var storageErr *domain.StorageError
				require.True(t, errors.As(err, &storageErr))
				assert.Equal(t, tt.status, storageErr.StatusCode)
			}
		})
	}
}

// TestProvider_FetchJSON_NotFound tests missing content maps onto ErrContentNotFound
func TestProvider_FetchJSON_NotFound(t *testing.T) {
	f := newFakeIPFS(t, "secret")
	ctx := context.Background()

	for _, p := range newProviders(t, f) {
		var out map[string]any
		err := p.FetchJSON(ctx, "bafymissing", &out)
		assert.ErrorIs(t, err, domain.ErrContentNotFound)
	}
}

// TestProvider_UploadJSON_Unencodable tests documents that cannot be encoded are refused before any request
func TestProvider_UploadJSON_Unencodable(t *testing.T) {
	f := newFakeIPFS(t, "secret")

	for _, p := range newProviders(t, f) {
		_, err := p.UploadJSON(context.Background(), "bad.json", map[string]any{"ch": make(chan int)})
		assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	}
	assert.Zero(t, f.uploads)
}

// TestNewProvider_MissingCredentials tests constructors refuse empty credentials
func TestNewProvider_MissingCredentials(t *testing.T) {
	_, err := storage.NewPinata(storage.PinataConfig{}, storage.Timeouts{}, newHTTPClient(), adapter.NewJSON())
	assert.ErrorIs(t, err, domain.ErrProviderMisconfigured)

	_, err = storage.NewWeb3Storage(storage.Web3StorageConfig{Token: "  "}, storage.Timeouts{}, newHTTPClient(), adapter.NewJSON())
	assert.ErrorIs(t, err, domain.ErrProviderMisconfigured)
}

func TestCIDFromURL(t *testing.T) {
	assert.Equal(t, "bafyabc", storage.CIDFromURL("ipfs://bafyabc"))
	assert.Equal(t, "bafyabc", storage.CIDFromURL("https://gateway.pinata.cloud/ipfs/bafyabc"))
	assert.Equal(t, "bafyabc", storage.CIDFromURL("https://w3s.link/ipfs/bafyabc?filename=x.json"))
	assert.Equal(t, "bafyabc", storage.CIDFromURL("bafyabc"))
}
