package jetstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/messaging"
)

// SubjectPrefix prefixes every registry event subject
const SubjectPrefix = "ardhi"

// DefaultDuplicateWindow is how long JetStream remembers event ids. A title
// event republished after a client retry within the window is stored once.
const DefaultDuplicateWindow = 2 * time.Minute

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// DuplicateWindow defaults to DefaultDuplicateWindow
	DuplicateWindow time.Duration
}

// StreamConfig returns the stream that stores every registry event subject
func (c Config) StreamConfig() natsjs.StreamConfig {
	window := c.DuplicateWindow
	if window <= 0 {
		window = DefaultDuplicateWindow
	}
	return natsjs.StreamConfig{
		Name:       c.StreamName,
		Subjects:   []string{SubjectPrefix + ".>"},
		Duplicates: window,
	}
}

type publisher struct {
	nc   adapter.NatsConn
	js   adapter.JetStream
	json adapter.JSON
}

// NewPublisher connects to NATS and ensures the event stream exists. With an
// empty stream name the stream is assumed to be managed elsewhere.
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	nc, js, err := natsJS.Connect(cfg.URL,
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("Event bus disconnected, registry events will fail until reconnect", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Event bus reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to event bus at %s: %w", cfg.URL, err)
	}

	if cfg.StreamName != "" {
		stored, err := js.EnsureStream(ctx, cfg.StreamConfig())
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
		}
		logger.InfoCtx(ctx, "Registry event stream ready",
			zap.String("stream", cfg.StreamName),
			zap.Uint64("stored_events", stored))
	}

	return &publisher{nc: nc, js: js, json: jsonAdapter}, nil
}

// Publish stores a registry event under its type subject. The event id is
// used as the message id so retried publishes are deduplicated.
func (p *publisher) Publish(ctx context.Context, event *domain.Event) error {
	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := BuildSubject(event)
	ack, err := p.js.Publish(ctx, subject, data, natsjs.WithMsgID(event.ID))
	if err != nil {
		return fmt.Errorf("failed to publish event %s to %s: %w", event.ID, subject, err)
	}

	logger.DebugCtx(ctx, "Published registry event",
		zap.String("subject", subject),
		zap.String("event_id", event.ID),
		zap.Uint64("asset_id", event.AssetID),
		zap.Bool("duplicate", ack != nil && ack.Duplicate))
	return nil
}

// BuildSubject returns ardhi.<event type>, e.g. ardhi.title.created
func BuildSubject(event *domain.Event) string {
	return SubjectPrefix + "." + strings.ToLower(string(event.Type))
}

func (p *publisher) Status() messaging.Status {
	if p.nc.IsConnected() {
		return messaging.StatusConnected
	}
	return messaging.StatusDisconnected
}

func (p *publisher) Close() {
	p.nc.Close()
}
