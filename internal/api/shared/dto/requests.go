package dto

import (
	"fmt"
	"strings"

	"github.com/ardhichain/ardhi-registry/internal/api/shared/constants"
	"github.com/ardhichain/ardhi-registry/internal/storage"
)

// StartMigrationRequest represents the request body for starting a migration run
type StartMigrationRequest struct {
	CIDs          []string `json:"cids" binding:"required"`
	Source        string   `json:"source"`
	Target        string   `json:"target"`
	RunValidation bool     `json:"validate"`
}

// Validate validates the request and fills in the default providers
func (r *StartMigrationRequest) Validate() error {
	if len(r.CIDs) == 0 {
		return fmt.Errorf("at least one CID is required")
	}
	if len(r.CIDs) > constants.MAX_CIDS_PER_MIGRATION {
		return fmt.Errorf("at most %d CIDs are allowed per migration", constants.MAX_CIDS_PER_MIGRATION)
	}
	for i, cid := range r.CIDs {
		r.CIDs[i] = strings.TrimSpace(cid)
		if r.CIDs[i] == "" {
			return fmt.Errorf("cids[%d] is empty", i)
		}
	}

	if r.Source == "" {
		r.Source = string(storage.ProviderPinata)
	}
	if r.Target == "" {
		r.Target = string(storage.ProviderWeb3Storage)
	}
	source, ok := storage.ParseProviderType(r.Source)
	if !ok {
		return fmt.Errorf("unknown source provider: %s", r.Source)
	}
	target, ok := storage.ParseProviderType(r.Target)
	if !ok {
		return fmt.Errorf("unknown target provider: %s", r.Target)
	}
	r.Source, r.Target = string(source), string(target)
	if source == target {
		return fmt.Errorf("source and target providers must differ")
	}

	return nil
}
