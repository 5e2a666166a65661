package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// RunStoreTests runs the store behaviour tests against the store returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("SaveAndGetMigrationReport", func(t *testing.T) { testSaveAndGetMigrationReport(t, initDB(t)) })
	t.Run("SaveMigrationReportReplaces", func(t *testing.T) { testSaveMigrationReportReplaces(t, initDB(t)) })
	t.Run("GetMigrationReportMissing", func(t *testing.T) { testGetMigrationReportMissing(t, initDB(t)) })
	t.Run("ListMigrationReports", func(t *testing.T) { testListMigrationReports(t, initDB(t)) })
	t.Run("ValidationReports", func(t *testing.T) { testValidationReports(t, initDB(t)) })
	t.Run("ValidationForUnknownRun", func(t *testing.T) { testValidationForUnknownRun(t, initDB(t)) })
}

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestReport(start time.Time) *domain.MigrationReport {
	end := start.Add(1500 * time.Millisecond)
	return &domain.MigrationReport{
		ID:           ulid.MustNewDefault(start).String(),
		Source:       "pinata",
		Target:       "web3storage",
		TotalItems:   3,
		SuccessCount: 2,
		FailureCount: 1,
		Results: []domain.MigrationResult{
			{Success: true, OriginalCID: "bafy1", NewCID: "bafyA"},
			{Success: false, OriginalCID: "bafy2", Error: "content not found"},
			{Success: true, OriginalCID: "bafy3", NewCID: "bafyC"},
		},
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
}

// =============================================================================
// Tests
// =============================================================================

func testSaveAndGetMigrationReport(t *testing.T, store Store) {
	ctx := context.Background()
	report := buildTestReport(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, store.SaveMigrationReport(ctx, report))

	got, err := store.GetMigrationReport(ctx, report.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, "pinata", got.Source)
	assert.Equal(t, "web3storage", got.Target)
	assert.Equal(t, 3, got.TotalItems)
	assert.Equal(t, 2, got.SuccessCount)
	assert.Equal(t, 1, got.FailureCount)
	assert.Equal(t, report.Results, got.Results)
	assert.True(t, report.StartTime.Equal(got.StartTime))
	assert.Equal(t, 1500*time.Millisecond, got.Duration)
	assert.Equal(t, map[string]string{"bafy1": "bafyA", "bafy3": "bafyC"}, got.Mappings())
}

func testSaveMigrationReportReplaces(t *testing.T, store Store) {
	ctx := context.Background()
	report := buildTestReport(time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveMigrationReport(ctx, report))

	report.Results[1] = domain.MigrationResult{Success: true, OriginalCID: "bafy2", NewCID: "bafyB"}
	report.SuccessCount, report.FailureCount = 3, 0
	require.NoError(t, store.SaveMigrationReport(ctx, report))

	got, err := store.GetMigrationReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.SuccessCount)
	assert.Equal(t, "bafyB", got.Results[1].NewCID)
}

func testGetMigrationReportMissing(t *testing.T, store Store) {
	got, err := store.GetMigrationReport(context.Background(), "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = store.SaveMigrationReport(context.Background(), &domain.MigrationReport{})
	assert.Error(t, err)
}

func testListMigrationReports(t *testing.T, store Store) {
	ctx := context.Background()
	older := buildTestReport(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	newer := buildTestReport(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveMigrationReport(ctx, older))
	require.NoError(t, store.SaveMigrationReport(ctx, newer))

	reports, err := store.ListMigrationReports(ctx, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, newer.ID, reports[0].ID)
	assert.Equal(t, older.ID, reports[1].ID)
	assert.Empty(t, reports[0].Results)
}

func testValidationReports(t *testing.T, store Store) {
	ctx := context.Background()
	report := buildTestReport(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveMigrationReport(ctx, report))

	none, err := store.GetLatestValidationReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	first := &domain.ValidationReport{TotalValidated: 2, ValidCount: 1, InvalidCount: 1, Errors: []string{"content mismatch: bafy1 -> bafyA"}}
	require.NoError(t, store.SaveValidationReport(ctx, report.ID, first))
	second := &domain.ValidationReport{TotalValidated: 2, ValidCount: 2}
	require.NoError(t, store.SaveValidationReport(ctx, report.ID, second))

	latest, err := store.GetLatestValidationReport(ctx, report.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 2, latest.ValidCount)
	assert.Equal(t, 0, latest.InvalidCount)
	assert.Empty(t, latest.Errors)
}

func testValidationForUnknownRun(t *testing.T, store Store) {
	err := store.SaveValidationReport(context.Background(), "01HUNKNOWNRUN0000000000000", &domain.ValidationReport{})
	assert.True(t, errors.Is(err, ErrRunNotFound))
}
