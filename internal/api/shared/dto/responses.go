package dto

import (
	"time"

	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// HealthResponse represents the health status of the API and its storage backend.
// Events reports the event bus; it never degrades the status since publishing is best effort.
type HealthResponse struct {
	Status           string `json:"status"`
	Storage          string `json:"storage"`
	StorageReachable bool   `json:"storage_reachable"`
	Events           string `json:"events"`
}

// TitleSummary represents a title asset without its history or metadata
type TitleSummary struct {
	AssetID     uint64 `json:"asset_id"`
	LandID      string `json:"land_id"`
	UnitName    string `json:"unit_name"`
	MetadataURL string `json:"metadata_url"`
	Creator     string `json:"creator"`
}

// TitleListResponse represents a list of title assets
type TitleListResponse struct {
	Titles []TitleSummary `json:"titles"`
	Total  int            `json:"total"`
}

// AccountTitle represents a title held by an account
type AccountTitle struct {
	TitleSummary
	Amount   uint64 `json:"amount"`
	IsFrozen bool   `json:"is_frozen"`
}

// AccountTitlesResponse represents the titles held by an account
type AccountTitlesResponse struct {
	Address string         `json:"address"`
	Titles  []AccountTitle `json:"titles"`
	Total   int            `json:"total"`
}

// ContractTitlesResponse represents the titles held in custody by the registry application
type ContractTitlesResponse struct {
	AppID   uint64         `json:"app_id"`
	Address string         `json:"address"`
	Titles  []TitleSummary `json:"titles"`
	Total   int            `json:"total"`
}

// MigrationRunResponse represents a migration run with its latest validation
type MigrationRunResponse struct {
	*domain.MigrationReport
	Validation *domain.ValidationReport `json:"validation,omitempty"`
}

// MigrationRunListResponse represents recent migration runs without per-item results
type MigrationRunListResponse struct {
	Runs []MigrationRunSummary `json:"runs"`
}

// MigrationRunSummary represents the aggregate counts of a migration run
type MigrationRunSummary struct {
	ID           string        `json:"id"`
	Source       string        `json:"source"`
	Target       string        `json:"target"`
	TotalItems   int           `json:"total_items"`
	SuccessCount int           `json:"success_count"`
	FailureCount int           `json:"failure_count"`
	StartTime    time.Time     `json:"start_time"`
	Duration     time.Duration `json:"duration_ns"`
}

// MapTitleSummary maps an asset onto its summary view
func MapTitleSummary(asset domain.Asset) TitleSummary {
	return TitleSummary{
		AssetID:     asset.Index,
		LandID:      asset.Name,
		UnitName:    asset.UnitName,
		MetadataURL: asset.URL,
		Creator:     asset.Creator,
	}
}

// MapMigrationRunSummary maps a migration report onto its summary view
func MapMigrationRunSummary(report domain.MigrationReport) MigrationRunSummary {
	return MigrationRunSummary{
		ID:           report.ID,
		Source:       report.Source,
		Target:       report.Target,
		TotalItems:   report.TotalItems,
		SuccessCount: report.SuccessCount,
		FailureCount: report.FailureCount,
		StartTime:    report.StartTime,
		Duration:     report.Duration,
	}
}
