package messaging

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// NewMigrationCompletedEvent builds the event announcing a finished migration run
func NewMigrationCompletedEvent(report *domain.MigrationReport, now time.Time) *domain.Event {
	return &domain.Event{
		ID:   ulid.MustNewDefault(now).String(),
		Type: domain.EventTypeMigrationCompleted,
		Data: map[string]any{
			"runId":        report.ID,
			"source":       report.Source,
			"target":       report.Target,
			"successCount": report.SuccessCount,
			"failureCount": report.FailureCount,
		},
		Timestamp: now.UTC(),
	}
}
