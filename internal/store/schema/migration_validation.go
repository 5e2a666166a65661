package schema

import (
	"time"

	"gorm.io/datatypes"
)

// MigrationValidation represents the migration_validations table - content comparisons of a migration run
type MigrationValidation struct {
	ID             uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	RunID          string         `gorm:"column:run_id;not null;index;type:varchar(26)"`
	TotalValidated int            `gorm:"column:total_validated;not null"`
	ValidCount     int            `gorm:"column:valid_count;not null"`
	InvalidCount   int            `gorm:"column:invalid_count;not null"`
	Errors         datatypes.JSON `gorm:"column:errors;not null;type:jsonb"`
	CreatedAt      time.Time      `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MigrationValidation model
func (MigrationValidation) TableName() string {
	return "migration_validations"
}
