package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// Web3StorageConfig holds the Web3.Storage credentials and endpoints
type Web3StorageConfig struct {
	Token      string
	APIURL     string
	GatewayURL string
}

type web3StorageProvider struct {
	cfg        Web3StorageConfig
	timeouts   Timeouts
	httpClient adapter.HTTPClient
	json       adapter.JSON
}

type web3StorageUploadResponse struct {
	CID string `json:"cid"`
}

// NewWeb3Storage creates a Web3.Storage backed provider
func NewWeb3Storage(cfg Web3StorageConfig, timeouts Timeouts, httpClient adapter.HTTPClient, json adapter.JSON) (Provider, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, misconfigured(ProviderWeb3Storage, "token is required")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = domain.DEFAULT_WEB3STORAGE_API_URL
	}
	if cfg.GatewayURL == "" {
		cfg.GatewayURL = domain.DEFAULT_WEB3STORAGE_GATEWAY
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return &web3StorageProvider{
		cfg:        cfg,
		timeouts:   timeouts.withDefaults(),
		httpClient: httpClient,
		json:       json,
	}, nil
}

func (w *web3StorageProvider) Name() ProviderType {
	return ProviderWeb3Storage
}

func (w *web3StorageProvider) headers(name, contentType string) map[string]string {
	h := map[string]string{"Authorization": "Bearer " + w.cfg.Token}
	if name != "" {
		h["X-Name"] = url.QueryEscape(name)
	}
	if contentType != "" {
		h["Content-Type"] = contentType
	}
	return h
}

func (w *web3StorageProvider) UploadFile(ctx context.Context, name string, data []byte) (string, error) {
	return w.upload(ctx, "upload_file", name, "application/octet-stream", data)
}

func (w *web3StorageProvider) UploadJSON(ctx context.Context, name string, doc any) (string, error) {
	payload, err := w.json.Marshal(doc)
	if err != nil {
		return "", invalidFormat(ProviderWeb3Storage, "upload_json", err)
	}
	return w.upload(ctx, "upload_json", name, "application/json", payload)
}

func (w *web3StorageProvider) upload(ctx context.Context, op, name, contentType string, body []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeouts.Upload)
	defer cancel()

	respBody, err := w.httpClient.PostBytes(ctx, w.cfg.APIURL+"/upload", w.headers(name, contentType), body)
	if err != nil {
		return "", wrapError(ProviderWeb3Storage, op, err)
	}

	var resp web3StorageUploadResponse
	if err := w.json.Unmarshal(respBody, &resp); err != nil {
		return "", invalidFormat(ProviderWeb3Storage, op, fmt.Errorf("failed to decode response: %w", err))
	}
	if resp.CID == "" {
		return "", invalidFormat(ProviderWeb3Storage, op, fmt.Errorf("response carries no cid"))
	}

	logger.DebugCtx(ctx, "Uploaded content", zap.String("provider", string(ProviderWeb3Storage)), zap.String("cid", resp.CID))

	return resp.CID, nil
}

func (w *web3StorageProvider) FetchJSON(ctx context.Context, cid string, out any) error {
	return fetchJSON(ctx, ProviderWeb3Storage, w.httpClient, w.json, w.timeouts.Fetch, w.GetFileURL(cid), out)
}

func (w *web3StorageProvider) GetFileURL(cid string) string {
	return gatewayURL(w.cfg.GatewayURL, cid)
}

func (w *web3StorageProvider) ValidateConnection(ctx context.Context) bool {
	return probe(ctx, ProviderWeb3Storage, w.httpClient, w.timeouts.Health, w.cfg.APIURL+"/user/uploads?size=1", w.headers("", ""))
}
