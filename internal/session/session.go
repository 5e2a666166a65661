package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/wallet"
)

// State is the connection state of a session
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

var (
	// ErrConnectInProgress is returned when Connect is called while another connect is pending
	ErrConnectInProgress = errors.New("wallet connection already in progress")
	// ErrConnectAborted is returned by a pending Connect after Disconnect was called
	ErrConnectAborted = errors.New("wallet connection aborted by disconnect")
)

// disconnectTimeout bounds wallet teardown on Disconnect
const disconnectTimeout = 5 * time.Second

// Snapshot is a point-in-time copy of the session
type Snapshot struct {
	ID        string `json:"id,omitempty"`
	Identity  string `json:"identity,omitempty"`
	Connected bool   `json:"connected"`
	IsAdmin   bool   `json:"isAdmin"`
	State     State  `json:"state"`
}

// Listener is notified after every session change
type Listener func(Snapshot)

// Session tracks which identity is connected through the wallet and whether it is the registry admin.
// It is safe for concurrent use.
type Session struct {
	wallet wallet.Wallet

	mu           sync.RWMutex
	adminAddress string
	id           string
	identity     string
	state        State
	stopWatch    chan struct{}
	// generation changes on every clear so a pending Connect can tell it was overtaken
	generation   uint64
	listeners    map[int]Listener
	nextListener int
}

// New creates a disconnected session
func New(w wallet.Wallet, adminAddress string) *Session {
	return &Session{
		wallet:       w,
		adminAddress: adminAddress,
		state:        StateDisconnected,
		listeners:    make(map[int]Listener),
	}
}

// Connect asks the wallet for its accounts and adopts the first one as the identity
func (s *Session) Connect(ctx context.Context) (string, error) {
	s.mu.Lock()
	switch s.state {
	case StateConnected:
		identity := s.identity
		s.mu.Unlock()
		return identity, nil
	case StateConnecting:
		s.mu.Unlock()
		return "", ErrConnectInProgress
	}
	s.state = StateConnecting
	generation := s.generation
	s.mu.Unlock()
	s.notify()

	accounts, err := s.wallet.Connect(ctx)
	if err == nil && len(accounts) == 0 {
		err = domain.ErrNoIdentities
	}
	if err != nil {
		s.mu.Lock()
		if s.generation != generation {
			s.mu.Unlock()
			return "", ErrConnectAborted
		}
		s.state = StateDisconnected
		s.mu.Unlock()
		s.notify()

		logger.WarnCtx(ctx, "Wallet connection failed", zap.Error(err))
		return "", wallet.ClassifyError(err)
	}

	stop := make(chan struct{})

	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()
		logger.InfoCtx(ctx, "Wallet connected after disconnect, dropping identity", zap.String("identity", accounts[0]))
		return "", ErrConnectAborted
	}
	s.id = uuid.NewString()
	s.identity = accounts[0]
	s.state = StateConnected
	s.stopWatch = stop
	identity := s.identity
	s.mu.Unlock()

	go s.watch(s.wallet.Disconnected(), stop)

	logger.InfoCtx(ctx, "Wallet connected", zap.String("identity", identity), zap.Bool("admin", s.IsAdmin()))
	s.notify()

	return identity, nil
}

// watch clears the session when the wallet ends it out of band
func (s *Session) watch(disconnected <-chan struct{}, stop chan struct{}) {
	select {
	case <-stop:
	case <-disconnected:
		logger.Info("Wallet ended the session")
		s.clear(stop)
	}
}

// Disconnect clears the session and tears down the wallet connection.
// Local state is cleared even when the wallet fails to disconnect.
func (s *Session) Disconnect() {
	s.mu.RLock()
	stop := s.stopWatch
	connected := s.state != StateDisconnected
	s.mu.RUnlock()

	if !connected {
		return
	}

	s.clear(stop)

	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := s.wallet.Disconnect(ctx); err != nil {
		logger.Warn("Wallet disconnect failed", zap.Error(err))
	}
}

// clear resets the session if it still belongs to the watcher identified by stop
func (s *Session) clear(stop chan struct{}) {
	s.mu.Lock()
	if s.stopWatch != stop {
		s.mu.Unlock()
		return
	}
	if s.stopWatch != nil {
		close(s.stopWatch)
		s.stopWatch = nil
	}
	s.id = ""
	s.identity = ""
	s.state = StateDisconnected
	s.generation++
	s.mu.Unlock()

	s.notify()
}

// SetAdminAddress replaces the admin address, e.g. once it has been read from the contract
func (s *Session) SetAdminAddress(address string) {
	s.mu.Lock()
	s.adminAddress = address
	s.mu.Unlock()
	s.notify()
}

// Identity returns the connected address, or an empty string
func (s *Session) Identity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// RequireIdentity returns the connected address or ErrNotConnected
func (s *Session) RequireIdentity() (string, error) {
	identity := s.Identity()
	if identity == "" {
		return "", domain.ErrNotConnected
	}
	return identity, nil
}

// IsAdmin reports whether the connected identity is the registry admin
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdminLocked()
}

func (s *Session) isAdminLocked() bool {
	return s.identity != "" && s.adminAddress != "" && s.identity == s.adminAddress
}

// IsConnected reports whether an identity is connected
func (s *Session) IsConnected() bool {
	return s.State() == StateConnected
}

// State returns the connection state
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot returns a copy of the session
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:        s.id,
		Identity:  s.identity,
		Connected: s.state == StateConnected,
		IsAdmin:   s.isAdminLocked(),
		State:     s.state,
	}
}

// Subscribe registers fn for change notifications and returns a function removing it
func (s *Session) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Session) notify() {
	s.mu.RLock()
	snap := s.snapshotLocked()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l(snap)
	}
}
