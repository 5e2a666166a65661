package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// DefaultMaxSize caps how much content a single download may buffer
const DefaultMaxSize int64 = 100 << 20

type DownloadResult struct {
	reader      io.ReadCloser
	contentType string
	size        int64
}

// Reader returns the io.ReadCloser for streaming the download
func (d *DownloadResult) Reader() io.ReadCloser {
	return d.reader
}

// ContentType returns the content type reported by the gateway
func (d *DownloadResult) ContentType() string {
	return d.contentType
}

// Size returns the size of the downloaded content (may be -1 if unknown)
func (d *DownloadResult) Size() int64 {
	return d.size
}

// Bytes reads the remaining content, failing when it exceeds maxSize
func (d *DownloadResult) Bytes(maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	data, err := io.ReadAll(io.LimitReader(d.reader, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: content exceeds %d bytes", domain.ErrPayloadTooLarge, maxSize)
	}

	return data, nil
}

// Close closes the underlying reader
func (d *DownloadResult) Close() error {
	if d.reader != nil {
		return d.reader.Close()
	}
	return nil
}

// HTTPGetter is the subset of adapter.HTTPClient needed to stream content
type HTTPGetter interface {
	GetResponse(ctx context.Context, url string, headers map[string]string) (*http.Response, error)
}

// Downloader defines the interface for downloading gateway content
//
//go:generate mockgen -source=downloader.go -destination=../mocks/downloader.go -package=mocks -mock_names=Downloader=MockDownloader
type Downloader interface {
	// Download fetches content from a URL and returns a streaming reader
	Download(ctx context.Context, url string) (*DownloadResult, error)
}

type downloader struct {
	httpClient HTTPGetter
}

func NewDownloader(httpClient HTTPGetter) Downloader {
	return &downloader{
		httpClient: httpClient,
	}
}

// Download fetches content from a URL and returns a streaming reader
func (d *downloader) Download(ctx context.Context, url string) (*DownloadResult, error) {
	logger.DebugCtx(ctx, "Downloading content", zap.String("url", url))

	resp, err := d.httpClient.GetResponse(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("failed to close response body", zap.Error(err), zap.String("url", url))
		}

		switch resp.StatusCode {
		case http.StatusNotFound:
			return nil, fmt.Errorf("%w: %s", domain.ErrContentNotFound, url)
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("%w: %s", domain.ErrRateLimited, url)
		default:
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
	}

	contentType := resp.Header.Get("Content-Type")
	contentLength := resp.ContentLength

	logger.DebugCtx(ctx, "Download started",
		zap.String("url", url),
		zap.String("contentType", contentType),
		zap.Int64("contentLength", contentLength),
	)

	return &DownloadResult{
		reader:      resp.Body,
		contentType: contentType,
		size:        contentLength,
	}, nil
}

// NewDownloadResult wraps an already opened reader, e.g. for content served from memory
func NewDownloadResult(reader io.ReadCloser, contentType string, size int64) *DownloadResult {
	return &DownloadResult{
		reader:      reader,
		contentType: contentType,
		size:        size,
	}
}
