package messaging

import (
	"context"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// Status is the broker connection state reported by a publisher
type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
	StatusDisabled     Status = "disabled"
)

// Publisher publishes registry events after successful ledger writes and migration runs.
// Publishing is best effort: callers log failures and never undo the write.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	Publish(ctx context.Context, event *domain.Event) error
	Status() Status
	Close()
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event
func NewNoopPublisher() Publisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(context.Context, *domain.Event) error { return nil }

func (NoopPublisher) Status() Status { return StatusDisabled }

func (NoopPublisher) Close() {}
