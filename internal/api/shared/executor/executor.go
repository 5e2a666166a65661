package executor

import (
	"context"
	"fmt"
	"sort"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	"github.com/ardhichain/ardhi-registry/internal/api/shared/constants"
	"github.com/ardhichain/ardhi-registry/internal/api/shared/dto"
	apierrors "github.com/ardhichain/ardhi-registry/internal/api/shared/errors"
	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/messaging"
	"github.com/ardhichain/ardhi-registry/internal/storage"
	"github.com/ardhichain/ardhi-registry/internal/store"
	"github.com/ardhichain/ardhi-registry/internal/verify"
)

const lookupConcurrency = 8

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor,Verifier=MockVerifier,TitleReader=MockTitleReader,Migrator=MockMigrator
type Executor interface {
	// Health probes the configured storage provider
	Health(ctx context.Context) *dto.HealthResponse

	// GetTitle retrieves the public record of a title
	GetTitle(ctx context.Context, assetID uint64) (*domain.PublicRecord, error)

	// SearchTitles retrieves the titles carrying a unit name
	SearchTitles(ctx context.Context, unit string) (*dto.TitleListResponse, error)

	// GetAccountTitles retrieves the titles held by an address
	GetAccountTitles(ctx context.Context, address string) (*dto.AccountTitlesResponse, error)

	// GetContractTitles retrieves the titles held by the registry application
	GetContractTitles(ctx context.Context) (*dto.ContractTitlesResponse, error)

	// StartMigration runs a migration to completion and records it
	StartMigration(ctx context.Context, req dto.StartMigrationRequest) (*dto.MigrationRunResponse, error)

	// GetMigration retrieves a recorded migration run, nil when it does not exist
	GetMigration(ctx context.Context, id string) (*dto.MigrationRunResponse, error)

	// ListMigrations retrieves the most recent migration runs
	ListMigrations(ctx context.Context, limit int) (*dto.MigrationRunListResponse, error)

	// ValidateMigration compares the content of a recorded run with its source and records the outcome
	ValidateMigration(ctx context.Context, id string) (*domain.ValidationReport, error)
}

// Verifier resolves the public record of a title
type Verifier interface {
	Verify(ctx context.Context, assetID uint64) (*domain.PublicRecord, error)
}

// TitleReader is the ledger read surface used by the listing endpoints
type TitleReader interface {
	SearchAssetsByUnitName(ctx context.Context, unit string) []domain.Asset
	GetAccountAssets(ctx context.Context, address string) []domain.AssetHolding
	GetAssetInfo(ctx context.Context, assetID uint64) (*domain.Asset, bool)
	GetContractAssets(ctx context.Context, appID uint64) []domain.Asset
	AppID() uint64
	ApplicationAddress() string
}

// Migrator copies and validates content between two providers
type Migrator interface {
	MigrateAllContent(ctx context.Context, cids []string) *domain.MigrationReport
	ValidateMigration(ctx context.Context, mappings map[string]string) *domain.ValidationReport
}

// MigratorBuilder builds a Migrator between two provider types
type MigratorBuilder func(source, target storage.ProviderType) (Migrator, error)

// Deps groups the collaborators of the executor
type Deps struct {
	Storage     storage.Provider
	Verifier    Verifier
	Titles      TitleReader
	Migrators   MigratorBuilder
	Store       store.Store
	Publisher   messaging.Publisher
	Clock       adapter.Clock
	Concurrency int
}

type executor struct {
	storage   storage.Provider
	verifier  Verifier
	titles    TitleReader
	migrators MigratorBuilder
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.ResultPool[*domain.Asset]
}

// NewExecutor creates the executor shared by the API handlers
func NewExecutor(deps Deps) Executor {
	if deps.Publisher == nil {
		deps.Publisher = messaging.NewNoopPublisher()
	}
	if deps.Concurrency <= 0 {
		deps.Concurrency = lookupConcurrency
	}
	return &executor{
		storage:   deps.Storage,
		verifier:  deps.Verifier,
		titles:    deps.Titles,
		migrators: deps.Migrators,
		store:     deps.Store,
		publisher: deps.Publisher,
		clock:     deps.Clock,
		pool:      pond.NewResultPool[*domain.Asset](deps.Concurrency),
	}
}

func (e *executor) Health(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{Status: "ok", Events: string(e.publisher.Status())}
	if e.storage == nil {
		resp.Status = "degraded"
		return resp
	}

	ctx, cancel := context.WithTimeout(ctx, constants.HEALTH_CHECK_TIMEOUT)
	defer cancel()

	resp.Storage = string(e.storage.Name())
	resp.StorageReachable = e.storage.ValidateConnection(ctx)
	if !resp.StorageReachable {
		resp.Status = "degraded"
	}
	return resp
}

func (e *executor) GetTitle(ctx context.Context, assetID uint64) (*domain.PublicRecord, error) {
	return e.verifier.Verify(ctx, assetID)
}

func (e *executor) SearchTitles(ctx context.Context, unit string) (*dto.TitleListResponse, error) {
	assets := e.titles.SearchAssetsByUnitName(ctx, unit)

	titles := make([]dto.TitleSummary, 0, len(assets))
	for _, asset := range onlyTitles(assets) {
		titles = append(titles, dto.MapTitleSummary(asset))
	}

	return &dto.TitleListResponse{Titles: titles, Total: len(titles)}, nil
}

func (e *executor) GetAccountTitles(ctx context.Context, address string) (*dto.AccountTitlesResponse, error) {
	holdings := e.titles.GetAccountAssets(ctx, address)

	held := make(map[uint64]domain.AssetHolding, len(holdings))
	group := e.pool.NewGroup()
	for _, h := range holdings {
		if h.Amount == 0 {
			continue
		}
		held[h.AssetID] = h
		assetID := h.AssetID
		group.SubmitErr(func() (*domain.Asset, error) {
			asset, ok := e.titles.GetAssetInfo(ctx, assetID)
			if !ok {
				return nil, nil
			}
			return asset, nil
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to look up account assets: %w", err)
	}

	assets := make([]domain.Asset, 0, len(results))
	for _, asset := range results {
		if asset != nil {
			assets = append(assets, *asset)
		}
	}

	titles := make([]dto.AccountTitle, 0, len(assets))
	for _, asset := range onlyTitles(assets) {
		h := held[asset.Index]
		titles = append(titles, dto.AccountTitle{
			TitleSummary: dto.MapTitleSummary(asset),
			Amount:       h.Amount,
			IsFrozen:     h.IsFrozen,
		})
	}

	return &dto.AccountTitlesResponse{Address: address, Titles: titles, Total: len(titles)}, nil
}

func (e *executor) GetContractTitles(ctx context.Context) (*dto.ContractTitlesResponse, error) {
	appID := e.titles.AppID()
	if appID == 0 {
		return nil, apierrors.NewUnavailableError("Registry application not configured")
	}

	titles := make([]dto.TitleSummary, 0)
	for _, asset := range onlyTitles(e.titles.GetContractAssets(ctx, appID)) {
		titles = append(titles, dto.MapTitleSummary(asset))
	}

	return &dto.ContractTitlesResponse{
		AppID:   appID,
		Address: e.titles.ApplicationAddress(),
		Titles:  titles,
		Total:   len(titles),
	}, nil
}

func (e *executor) StartMigration(ctx context.Context, req dto.StartMigrationRequest) (*dto.MigrationRunResponse, error) {
	m, err := e.migrators(storage.ProviderType(req.Source), storage.ProviderType(req.Target))
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to create migrator")
	}

	report := m.MigrateAllContent(ctx, req.CIDs)
	resp := &dto.MigrationRunResponse{MigrationReport: report}

	if req.RunValidation {
		resp.Validation = m.ValidateMigration(ctx, report.Mappings())
	}

	if e.store != nil {
		if err := e.store.SaveMigrationReport(ctx, report); err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to save migration run: %v", err))
		}
		if resp.Validation != nil {
			if err := e.store.SaveValidationReport(ctx, report.ID, resp.Validation); err != nil {
				return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to save validation: %v", err))
			}
		}
	}

	e.publishMigrationCompleted(ctx, report)

	return resp, nil
}

func (e *executor) publishMigrationCompleted(ctx context.Context, report *domain.MigrationReport) {
	event := messaging.NewMigrationCompletedEvent(report, e.clock.Now())
	if err := e.publisher.Publish(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish migration event", zap.String("runId", report.ID), zap.Error(err))
	}
}

func (e *executor) GetMigration(ctx context.Context, id string) (*dto.MigrationRunResponse, error) {
	if e.store == nil {
		return nil, apierrors.NewUnavailableError("Migration history requires a database")
	}

	report, err := e.store.GetMigrationReport(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get migration run: %v", err))
	}
	if report == nil {
		return nil, nil
	}

	validation, err := e.store.GetLatestValidationReport(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get validation: %v", err))
	}

	return &dto.MigrationRunResponse{MigrationReport: report, Validation: validation}, nil
}

func (e *executor) ListMigrations(ctx context.Context, limit int) (*dto.MigrationRunListResponse, error) {
	if e.store == nil {
		return nil, apierrors.NewUnavailableError("Migration history requires a database")
	}

	reports, err := e.store.ListMigrationReports(ctx, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list migration runs: %v", err))
	}

	runs := make([]dto.MigrationRunSummary, 0, len(reports))
	for _, r := range reports {
		runs = append(runs, dto.MapMigrationRunSummary(r))
	}
	return &dto.MigrationRunListResponse{Runs: runs}, nil
}

func (e *executor) ValidateMigration(ctx context.Context, id string) (*domain.ValidationReport, error) {
	run, err := e.GetMigration(ctx, id)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, apierrors.NewNotFoundError("Migration run not found", id)
	}

	m, err := e.migrators(storage.ProviderType(run.Source), storage.ProviderType(run.Target))
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to create migrator")
	}

	report := m.ValidateMigration(ctx, run.Mappings())
	if err := e.store.SaveValidationReport(ctx, id, report); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to save validation: %v", err))
	}

	return report, nil
}

// onlyTitles keeps the assets that pass structural title validation, ordered by id
func onlyTitles(assets []domain.Asset) []domain.Asset {
	out := make([]domain.Asset, 0, len(assets))
	for i := range assets {
		if verify.ValidateTitleAsset(&assets[i]) == nil {
			out = append(out, assets[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
