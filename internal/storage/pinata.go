package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// PinataConfig holds the Pinata credentials and endpoints
type PinataConfig struct {
	JWT        string
	APIURL     string
	GatewayURL string
}

type pinataProvider struct {
	cfg        PinataConfig
	timeouts   Timeouts
	httpClient adapter.HTTPClient
	json       adapter.JSON
}

type pinataPinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

type pinataMetadata struct {
	Name string `json:"name"`
}

type pinataJSONRequest struct {
	PinataContent  any            `json:"pinataContent"`
	PinataMetadata pinataMetadata `json:"pinataMetadata"`
}

// NewPinata creates a Pinata backed provider
func NewPinata(cfg PinataConfig, timeouts Timeouts, httpClient adapter.HTTPClient, json adapter.JSON) (Provider, error) {
	if strings.TrimSpace(cfg.JWT) == "" {
		return nil, misconfigured(ProviderPinata, "jwt is required")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = domain.DEFAULT_PINATA_API_URL
	}
	if cfg.GatewayURL == "" {
		cfg.GatewayURL = domain.DEFAULT_PINATA_GATEWAY
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return &pinataProvider{
		cfg:        cfg,
		timeouts:   timeouts.withDefaults(),
		httpClient: httpClient,
		json:       json,
	}, nil
}

func (p *pinataProvider) Name() ProviderType {
	return ProviderPinata
}

func (p *pinataProvider) authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + p.cfg.JWT}
}

func (p *pinataProvider) UploadFile(ctx context.Context, name string, data []byte) (string, error) {
	const op = "upload_file"

	meta, err := p.json.Marshal(pinataMetadata{Name: name})
	if err != nil {
		return "", invalidFormat(ProviderPinata, op, err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", wrapError(ProviderPinata, op, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", wrapError(ProviderPinata, op, err)
	}
	if err := writer.WriteField("pinataMetadata", string(meta)); err != nil {
		return "", wrapError(ProviderPinata, op, err)
	}
	if err := writer.Close(); err != nil {
		return "", wrapError(ProviderPinata, op, err)
	}

	headers := p.authHeaders()
	headers["Content-Type"] = writer.FormDataContentType()

	return p.pin(ctx, op, "/pinning/pinFileToIPFS", headers, body.Bytes())
}

func (p *pinataProvider) UploadJSON(ctx context.Context, name string, doc any) (string, error) {
	const op = "upload_json"

	payload, err := p.json.Marshal(pinataJSONRequest{
		PinataContent:  doc,
		PinataMetadata: pinataMetadata{Name: name},
	})
	if err != nil {
		return "", invalidFormat(ProviderPinata, op, err)
	}

	headers := p.authHeaders()
	headers["Content-Type"] = "application/json"

	return p.pin(ctx, op, "/pinning/pinJSONToIPFS", headers, payload)
}

func (p *pinataProvider) pin(ctx context.Context, op, path string, headers map[string]string, body []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeouts.Upload)
	defer cancel()

	respBody, err := p.httpClient.PostBytes(ctx, p.cfg.APIURL+path, headers, body)
	if err != nil {
		return "", wrapError(ProviderPinata, op, err)
	}

	var resp pinataPinResponse
	if err := p.json.Unmarshal(respBody, &resp); err != nil {
		return "", invalidFormat(ProviderPinata, op, fmt.Errorf("failed to decode response: %w", err))
	}
	if resp.IpfsHash == "" {
		return "", invalidFormat(ProviderPinata, op, fmt.Errorf("response carries no IpfsHash"))
	}

	logger.DebugCtx(ctx, "Pinned content", zap.String("provider", string(ProviderPinata)), zap.String("cid", resp.IpfsHash))

	return resp.IpfsHash, nil
}

func (p *pinataProvider) FetchJSON(ctx context.Context, cid string, out any) error {
	return fetchJSON(ctx, ProviderPinata, p.httpClient, p.json, p.timeouts.Fetch, p.GetFileURL(cid), out)
}

func (p *pinataProvider) GetFileURL(cid string) string {
	return gatewayURL(p.cfg.GatewayURL, cid)
}

func (p *pinataProvider) ValidateConnection(ctx context.Context) bool {
	return probe(ctx, ProviderPinata, p.httpClient, p.timeouts.Health, p.cfg.APIURL+"/data/testAuthentication", p.authHeaders())
}
