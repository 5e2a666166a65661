package downloader_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/downloader"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/mocks"
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

const contentURL = "https://gateway.pinata.cloud/ipfs/QmDocument"

func response(status int, contentType, body string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode:    status,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

// TestDownload tests a successful download exposes the stream and its headers
func TestDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	ctx := context.Background()

	httpClient.EXPECT().GetResponse(ctx, contentURL, nil).
		Return(response(http.StatusOK, "application/pdf", "%PDF-1.7"), nil)

	result, err := downloader.NewDownloader(httpClient).Download(ctx, contentURL)
	require.NoError(t, err)
	defer func() { _ = result.Close() }()

	assert.Equal(t, "application/pdf", result.ContentType())
	assert.Equal(t, int64(8), result.Size())

	data, err := result.Bytes(0)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))
}

// TestDownload_Errors tests gateway failures map onto the registry errors
func TestDownload_Errors(t *testing.T) {
	tests := []struct {
		name    string
		resp    *http.Response
		err     error
		wantErr error
		wantMsg string
	}{
		{
			name:    "not found",
			resp:    response(http.StatusNotFound, "", "not found"),
			wantErr: domain.ErrContentNotFound,
		},
		{
			name:    "rate limited",
			resp:    response(http.StatusTooManyRequests, "", ""),
			wantErr: domain.ErrRateLimited,
		},
		{
			name:    "server error",
			resp:    response(http.StatusBadGateway, "", ""),
			wantMsg: "unexpected status code: 502",
		},
		{
			name:    "transport error",
			err:     errors.New("connection refused"),
			wantMsg: "failed to download: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			httpClient := mocks.NewMockHTTPClient(ctrl)
			httpClient.EXPECT().GetResponse(gomock.Any(), contentURL, nil).Return(tt.resp, tt.err)

			result, err := downloader.NewDownloader(httpClient).Download(context.Background(), contentURL)
			assert.Nil(t, result)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

// TestDownloadResult_Bytes tests the size cap
func TestDownloadResult_Bytes(t *testing.T) {
	result := downloader.NewDownloadResult(io.NopCloser(strings.NewReader("0123456789")), "text/plain", -1)

	_, err := result.Bytes(5)
	assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)

	result = downloader.NewDownloadResult(io.NopCloser(strings.NewReader("01234")), "text/plain", 5)
	data, err := result.Bytes(5)
	require.NoError(t, err)
	assert.Equal(t, "01234", string(data))
	assert.NoError(t, result.Close())
}
