package store

import (
	"context"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// AutoMigrate creates or updates the tables
	AutoMigrate(ctx context.Context) error
	// SaveMigrationReport persists a migration run with its per-item results
	SaveMigrationReport(ctx context.Context, report *domain.MigrationReport) error
	// GetMigrationReport retrieves a migration run by id, nil when it does not exist
	GetMigrationReport(ctx context.Context, id string) (*domain.MigrationReport, error)
	// ListMigrationReports returns the most recent runs without their per-item results
	ListMigrationReports(ctx context.Context, limit int) ([]domain.MigrationReport, error)
	// SaveValidationReport records a validation of a migration run
	SaveValidationReport(ctx context.Context, runID string, report *domain.ValidationReport) error
	// GetLatestValidationReport retrieves the most recent validation of a run, nil when there is none
	GetLatestValidationReport(ctx context.Context, runID string) (*domain.ValidationReport, error)
}
