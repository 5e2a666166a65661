package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/store/schema"
)

// ErrRunNotFound is returned when a validation refers to an unknown migration run
var ErrRunNotFound = errors.New("migration run not found")

const defaultListLimit = 20

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, defaults from NormalizeConnectionPoolSettings are used.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

func (s *pgStore) AutoMigrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&schema.MigrationRun{}, &schema.MigrationValidation{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SaveMigrationReport inserts or replaces a migration run
func (s *pgStore) SaveMigrationReport(ctx context.Context, report *domain.MigrationReport) error {
	if report == nil || report.ID == "" {
		return errors.New("migration report must have an id")
	}

	results, err := json.Marshal(report.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal migration results: %w", err)
	}

	run := schema.MigrationRun{
		ID:           report.ID,
		Source:       report.Source,
		Target:       report.Target,
		TotalItems:   report.TotalItems,
		SuccessCount: report.SuccessCount,
		FailureCount: report.FailureCount,
		Results:      datatypes.JSON(results),
		StartedAt:    report.StartTime.UTC(),
		FinishedAt:   report.EndTime.UTC(),
		DurationMs:   report.Duration.Milliseconds(),
	}

	if err := s.db.WithContext(ctx).Omit("Validations", "CreatedAt").Save(&run).Error; err != nil {
		return fmt.Errorf("failed to save migration run: %w", err)
	}

	logger.DebugCtx(ctx, "Saved migration run", zap.String("runID", run.ID), zap.Int("items", run.TotalItems))
	return nil
}

func (s *pgStore) GetMigrationReport(ctx context.Context, id string) (*domain.MigrationReport, error) {
	var run schema.MigrationRun
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get migration run: %w", err)
	}

	report := toMigrationReport(run)
	if len(run.Results) > 0 {
		if err := json.Unmarshal(run.Results, &report.Results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal migration results: %w", err)
		}
	}
	return &report, nil
}

func (s *pgStore) ListMigrationReports(ctx context.Context, limit int) ([]domain.MigrationReport, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	var runs []schema.MigrationRun
	err := s.db.WithContext(ctx).
		Omit("results").
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list migration runs: %w", err)
	}

	reports := make([]domain.MigrationReport, 0, len(runs))
	for _, run := range runs {
		reports = append(reports, toMigrationReport(run))
	}
	return reports, nil
}

func (s *pgStore) SaveValidationReport(ctx context.Context, runID string, report *domain.ValidationReport) error {
	if report == nil {
		return errors.New("validation report is nil")
	}

	errs := report.Errors
	if errs == nil {
		errs = []string{}
	}
	encoded, err := json.Marshal(errs)
	if err != nil {
		return fmt.Errorf("failed to marshal validation errors: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.MigrationRun{}).Where("id = ?", runID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration run: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}

		validation := schema.MigrationValidation{
			RunID:          runID,
			TotalValidated: report.TotalValidated,
			ValidCount:     report.ValidCount,
			InvalidCount:   report.InvalidCount,
			Errors:         datatypes.JSON(encoded),
		}
		if err := tx.Omit("CreatedAt").Create(&validation).Error; err != nil {
			return fmt.Errorf("failed to save migration validation: %w", err)
		}
		return nil
	})
}

func (s *pgStore) GetLatestValidationReport(ctx context.Context, runID string) (*domain.ValidationReport, error) {
	var validation schema.MigrationValidation
	err := s.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("created_at DESC, id DESC").
		First(&validation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get migration validation: %w", err)
	}

	report := &domain.ValidationReport{
		TotalValidated: validation.TotalValidated,
		ValidCount:     validation.ValidCount,
		InvalidCount:   validation.InvalidCount,
		Errors:         []string{},
	}
	if len(validation.Errors) > 0 {
		if err := json.Unmarshal(validation.Errors, &report.Errors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal validation errors: %w", err)
		}
	}
	return report, nil
}

func toMigrationReport(run schema.MigrationRun) domain.MigrationReport {
	return domain.MigrationReport{
		ID:           run.ID,
		Source:       run.Source,
		Target:       run.Target,
		TotalItems:   run.TotalItems,
		SuccessCount: run.SuccessCount,
		FailureCount: run.FailureCount,
		StartTime:    run.StartedAt,
		EndTime:      run.FinishedAt,
		Duration:     time.Duration(run.DurationMs) * time.Millisecond,
	}
}
