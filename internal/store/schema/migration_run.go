package schema

import (
	"time"

	"gorm.io/datatypes"
)

// MigrationRun represents the migration_runs table - one row per content migration between providers
type MigrationRun struct {
	// ID is the run identifier (ULID)
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// Source is the provider content was copied from
	Source string `gorm:"column:source;not null;type:varchar(32)"`
	// Target is the provider content was copied to
	Target string `gorm:"column:target;not null;type:varchar(32)"`
	// TotalItems is the number of content identifiers in the run
	TotalItems int `gorm:"column:total_items;not null"`
	// SuccessCount is the number of identifiers copied successfully
	SuccessCount int `gorm:"column:success_count;not null"`
	// FailureCount is the number of identifiers that failed
	FailureCount int `gorm:"column:failure_count;not null"`
	// Results holds the per-item results in input order
	Results datatypes.JSON `gorm:"column:results;not null;type:jsonb"`
	// StartedAt is when the run started
	StartedAt time.Time `gorm:"column:started_at;not null;type:timestamptz"`
	// FinishedAt is when the run finished
	FinishedAt time.Time `gorm:"column:finished_at;not null;type:timestamptz"`
	// DurationMs is the wall time of the run in milliseconds
	DurationMs int64 `gorm:"column:duration_ms;not null"`
	// CreatedAt is when the run was first persisted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	Validations []MigrationValidation `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the MigrationRun model
func (MigrationRun) TableName() string {
	return "migration_runs"
}
