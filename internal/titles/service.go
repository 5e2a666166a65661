package titles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/ledger"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/messaging"
	"github.com/ardhichain/ardhi-registry/internal/storage"
	"github.com/ardhichain/ardhi-registry/internal/verify"
)

// Ledger is the subset of the ledger client the service writes through
//
//go:generate mockgen -source=service.go -destination=../mocks/titles.go -package=mocks -mock_names=Ledger=MockTitleLedger,Identity=MockIdentity
type Ledger interface {
	CreateTitle(ctx context.Context, sender, landID, metadataURL string) (*ledger.CreateTitleResult, error)
	AdminTransferTitle(ctx context.Context, sender string, assetID uint64, receiver string) (*ledger.TransferResult, error)
	UserTransferTitle(ctx context.Context, sender string, assetID uint64, receiver string) (*ledger.TransferResult, error)
	OptInAsset(ctx context.Context, sender string, assetID uint64) (*ledger.TransferResult, error)
}

// Identity provides the signing identity of the current session
type Identity interface {
	RequireIdentity() (string, error)
	IsAdmin() bool
}

// RegisterRequest describes a land title to mint
type RegisterRequest struct {
	LandID       string
	Location     string
	Area         string
	Municipality string
	DocumentName string
	Document     []byte
	// InitialOwner receives the title right after minting when set
	InitialOwner string
}

// RegisterResult is the outcome of a registration
type RegisterResult struct {
	Title       domain.TitleRecord        `json:"title"`
	DocumentCID string                    `json:"documentCid"`
	MetadataCID string                    `json:"metadataCid"`
	Creation    *ledger.CreateTitleResult `json:"creation"`
	Transfer    *ledger.TransferResult    `json:"transfer,omitempty"`
}

// Service registers and moves land titles on behalf of the session identity
type Service struct {
	identity  Identity
	ledger    Ledger
	storage   storage.Provider
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewService creates a title service. A nil publisher disables events.
func NewService(identity Identity, l Ledger, provider storage.Provider, publisher messaging.Publisher, clock adapter.Clock) *Service {
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}
	return &Service{
		identity:  identity,
		ledger:    l,
		storage:   provider,
		publisher: publisher,
		clock:     clock,
	}
}

// Register uploads the title document and metadata, mints the title and optionally
// hands it to an initial owner. When minting succeeds but the hand-over fails the
// result is returned together with the error.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	admin, err := s.requireAdmin()
	if err != nil {
		return nil, err
	}

	req.LandID = strings.TrimSpace(req.LandID)
	if !verify.ValidLandID(req.LandID) {
		return nil, fmt.Errorf("%w: land id %q does not match pattern %s", domain.ErrInvalidTitle, req.LandID, verify.DefaultLandIDPattern)
	}
	if len(req.Document) == 0 {
		return nil, errors.New("title document is empty")
	}

	documentName := req.DocumentName
	if documentName == "" {
		documentName = strings.NewReplacer("/", "-").Replace(req.LandID)
	}
	documentCID, err := s.storage.UploadFile(ctx, documentName, req.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to upload title document: %w", err)
	}

	metadata := domain.TitleMetadata{
		LandID:       req.LandID,
		Location:     req.Location,
		Area:         req.Area,
		Municipality: req.Municipality,
		DocumentHash: documentCID,
		CreatedAt:    s.clock.Now().UTC(),
	}
	metadataCID, err := s.storage.UploadJSON(ctx, strings.NewReplacer("/", "-").Replace(req.LandID)+".json", metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to upload title metadata: %w", err)
	}
	metadataURL := domain.IPFS_SCHEME + metadataCID

	creation, err := s.ledger.CreateTitle(ctx, admin, req.LandID, metadataURL)
	if err != nil {
		return nil, err
	}

	result := &RegisterResult{
		Title: domain.TitleRecord{
			AssetID:     creation.AssetID,
			LandID:      req.LandID,
			MetadataURL: metadataURL,
			Creator:     admin,
			Owner:       admin,
			Metadata:    &metadata,
		},
		DocumentCID: documentCID,
		MetadataCID: metadataCID,
		Creation:    creation,
	}

	s.publish(ctx, &domain.Event{
		Type:    domain.EventTypeTitleCreated,
		AssetID: creation.AssetID,
		TxID:    creation.TxID,
		From:    admin,
		Data: map[string]any{
			"landId":      req.LandID,
			"metadataUrl": metadataURL,
			"status":      string(creation.Status),
		},
	})

	owner := strings.TrimSpace(req.InitialOwner)
	if owner == "" || owner == admin {
		return result, nil
	}

	transfer, err := s.ledger.AdminTransferTitle(ctx, admin, creation.AssetID, owner)
	if err != nil {
		return result, fmt.Errorf("title %d created but transfer to %s failed: %w", creation.AssetID, owner, err)
	}
	result.Transfer = transfer
	result.Title.Owner = owner
	s.publishTransfer(ctx, creation.AssetID, admin, owner, transfer)

	return result, nil
}

// Transfer moves a title to receiver. The administrator transfers titles held by the
// contract; any other identity transfers a title it holds.
func (s *Service) Transfer(ctx context.Context, assetID uint64, receiver string) (*ledger.TransferResult, error) {
	sender, err := s.identity.RequireIdentity()
	if err != nil {
		return nil, err
	}

	var result *ledger.TransferResult
	if s.identity.IsAdmin() {
		result, err = s.ledger.AdminTransferTitle(ctx, sender, assetID, receiver)
	} else {
		result, err = s.ledger.UserTransferTitle(ctx, sender, assetID, receiver)
	}
	if err != nil {
		return nil, err
	}

	s.publishTransfer(ctx, assetID, sender, receiver, result)
	return result, nil
}

// OptIn registers the session identity to receive assetID
func (s *Service) OptIn(ctx context.Context, assetID uint64) (*ledger.TransferResult, error) {
	sender, err := s.identity.RequireIdentity()
	if err != nil {
		return nil, err
	}
	return s.ledger.OptInAsset(ctx, sender, assetID)
}

func (s *Service) requireAdmin() (string, error) {
	identity, err := s.identity.RequireIdentity()
	if err != nil {
		return "", err
	}
	if !s.identity.IsAdmin() {
		return "", &domain.AuthorizationError{Address: identity, Reason: "only the registry administrator can register titles"}
	}
	return identity, nil
}

func (s *Service) publishTransfer(ctx context.Context, assetID uint64, from, to string, result *ledger.TransferResult) {
	s.publish(ctx, &domain.Event{
		Type:    domain.EventTypeTitleTransferred,
		AssetID: assetID,
		TxID:    result.TxID,
		From:    from,
		To:      to,
	})
}

// publish sends an event; the write already happened so failures are only logged
func (s *Service) publish(ctx context.Context, event *domain.Event) {
	now := s.clock.Now()
	event.ID = ulid.MustNewDefault(now).String()
	event.Timestamp = now.UTC()

	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish registry event",
			zap.String("type", string(event.Type)),
			zap.Uint64("assetID", event.AssetID),
			zap.Error(err))
	}
}
