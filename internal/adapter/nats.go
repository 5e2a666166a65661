package adapter

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NatsConn is the connection handle the event publisher keeps
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=NatsConn=MockNatsConn
type NatsConn interface {
	Close()
	// IsConnected reports false while the client is reconnecting or closed
	IsConnected() bool
	ConnectedUrl() string
}

// JetStream is the publish side of JetStream. Registry events are never consumed in-process.
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=JetStream=MockJetStream
type JetStream interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
	// EnsureStream creates the stream or updates it in place and returns its stored message count
	EnsureStream(ctx context.Context, cfg jetstream.StreamConfig) (uint64, error)
}

// NatsJetStream dials NATS and opens a JetStream context on the connection
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=NatsJetStream=MockNatsJetStream
type NatsJetStream interface {
	Connect(url string, options ...nats.Option) (NatsConn, JetStream, error)
}

type natsDialer struct{}

// NewNatsJetStream returns the dialer backed by nats.go
func NewNatsJetStream() NatsJetStream {
	return natsDialer{}
}

func (natsDialer) Connect(url string, options ...nats.Option) (NatsConn, JetStream, error) {
	nc, err := nats.Connect(url, options...)
	if err != nil {
		return nil, nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	return nc, eventStream{js: js}, nil
}

type eventStream struct {
	js jetstream.JetStream
}

func (e eventStream) Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	return e.js.Publish(ctx, subject, data, opts...)
}

func (e eventStream) EnsureStream(ctx context.Context, cfg jetstream.StreamConfig) (uint64, error) {
	stream, err := e.js.CreateOrUpdateStream(ctx, cfg)
	if err != nil {
		return 0, err
	}
	return stream.CachedInfo().State.Msgs, nil
}
