package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// DefaultStatusInterval is how often the bridge session status is polled
const DefaultStatusInterval = 5 * time.Second

// BridgeConfig holds the wallet bridge endpoint
type BridgeConfig struct {
	URL            string
	StatusInterval time.Duration
}

type bridgeConnectResponse struct {
	Accounts []string `json:"accounts"`
	Error    string   `json:"error,omitempty"`
}

type bridgeTxn struct {
	Txn     string   `json:"txn"`
	Signers []string `json:"signers,omitempty"`
}

type bridgeSignRequest struct {
	TxnGroups [][]bridgeTxn `json:"txnGroups"`
}

type bridgeSignResponse struct {
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

type bridgeStatusResponse struct {
	Connected bool `json:"connected"`
}

// BridgeWallet relays connection and signing requests to an external signing app over HTTP
type BridgeWallet struct {
	cfg        BridgeConfig
	httpClient adapter.HTTPClient
	json       adapter.JSON
	base64     adapter.Base64

	mu     sync.Mutex
	closed chan struct{}
	stop   context.CancelFunc
}

// NewBridgeWallet creates a wallet that talks to the bridge at cfg.URL
func NewBridgeWallet(cfg BridgeConfig, httpClient adapter.HTTPClient, json adapter.JSON, b64 adapter.Base64) (*BridgeWallet, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("wallet bridge url is required")
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	if cfg.StatusInterval <= 0 {
		cfg.StatusInterval = DefaultStatusInterval
	}

	return &BridgeWallet{
		cfg:        cfg,
		httpClient: httpClient,
		json:       json,
		base64:     b64,
		closed:     make(chan struct{}),
	}, nil
}

func (w *BridgeWallet) Connect(ctx context.Context) ([]string, error) {
	body, err := w.httpClient.PostBytes(ctx, w.cfg.URL+"/connect", jsonHeaders(), []byte("{}"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect wallet bridge: %w", err)
	}

	var resp bridgeConnectResponse
	if err := w.json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode connect response: %w", err)
	}
	if resp.Error != "" {
		return nil, ClassifyError(errors.New(resp.Error))
	}

	w.watch()

	return resp.Accounts, nil
}

// watch starts polling the bridge status, closing the disconnected channel once the session ends
func (w *BridgeWallet) watch() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stop != nil {
		w.stop()
	}
	select {
	case <-w.closed:
		w.closed = make(chan struct{})
	default:
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.stop = cancel
	closed := w.closed

	go func() {
		ticker := time.NewTicker(w.cfg.StatusInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				var status bridgeStatusResponse
				if err := w.httpClient.Get(ctx, w.cfg.URL+"/status", nil, &status); err != nil {
					logger.Debug("Wallet bridge status check failed", zap.Error(err))
					continue
				}
				if !status.Connected {
					logger.Info("Wallet bridge reported the session ended")
					w.markClosed(closed)
					return
				}
			}
		}
	}()
}

func (w *BridgeWallet) markClosed(ch chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-ch:
	default:
		close(ch)
	}
}

func (w *BridgeWallet) SignTransactions(ctx context.Context, groups [][]SignRequest) (any, error) {
	req := bridgeSignRequest{TxnGroups: make([][]bridgeTxn, 0, len(groups))}
	for _, group := range groups {
		txns := make([]bridgeTxn, 0, len(group))
		for _, r := range group {
			txns = append(txns, bridgeTxn{Txn: w.base64.Encode(r.Txn), Signers: r.Signers})
		}
		req.TxnGroups = append(req.TxnGroups, txns)
	}

	payload, err := w.json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode signing request: %w", err)
	}

	body, err := w.httpClient.PostBytes(ctx, w.cfg.URL+"/sign", jsonHeaders(), payload)
	if err != nil {
		return nil, fmt.Errorf("failed to reach wallet bridge: %w", err)
	}

	var resp bridgeSignResponse
	if err := w.json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode signing response: %w", err)
	}
	if resp.Error != "" {
		return nil, errors.New(resp.Error)
	}

	return resp.Result, nil
}

func (w *BridgeWallet) Disconnect(ctx context.Context) error {
	w.mu.Lock()
	if w.stop != nil {
		w.stop()
		w.stop = nil
	}
	w.mu.Unlock()

	if _, err := w.httpClient.PostBytes(ctx, w.cfg.URL+"/disconnect", jsonHeaders(), []byte("{}")); err != nil {
		return fmt.Errorf("failed to disconnect wallet bridge: %w", err)
	}
	return nil
}

func (w *BridgeWallet) Disconnected() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}
