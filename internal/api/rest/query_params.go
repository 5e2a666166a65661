package rest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/gin-gonic/gin"

	"github.com/ardhichain/ardhi-registry/internal/api/shared/constants"
	"github.com/ardhichain/ardhi-registry/internal/domain"
)

// ListTitlesQueryParams holds query parameters for GET /titles
type ListTitlesQueryParams struct {
	Unit string `form:"unit"`
}

// ParseListTitlesQuery parses query parameters for GET /titles
func ParseListTitlesQuery(c *gin.Context) (*ListTitlesQueryParams, error) {
	var params ListTitlesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	params.Unit = strings.TrimSpace(params.Unit)
	if params.Unit == "" {
		params.Unit = domain.TITLE_UNIT_NAME
	}
	return &params, nil
}

// Validate validates the query parameters
func (p *ListTitlesQueryParams) Validate() error {
	if len(p.Unit) > constants.MAX_UNIT_NAME_LENGTH {
		return fmt.Errorf("unit must be at most %d characters", constants.MAX_UNIT_NAME_LENGTH)
	}
	return nil
}

// ListMigrationsQueryParams holds query parameters for GET /migrations
type ListMigrationsQueryParams struct {
	Limit int `form:"limit,default=20"`
}

// ParseListMigrationsQuery parses query parameters for GET /migrations
func ParseListMigrationsQuery(c *gin.Context) (*ListMigrationsQueryParams, error) {
	var params ListMigrationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limits
	if params.Limit > constants.MAX_MIGRATIONS_PAGE_SIZE {
		params.Limit = constants.MAX_MIGRATIONS_PAGE_SIZE
	}
	return &params, nil
}

// Validate validates the query parameters
func (p *ListMigrationsQueryParams) Validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("limit must be positive")
	}
	return nil
}

// parseAssetID parses a positive asset id path parameter
func parseAssetID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("asset id must be a positive integer: %q", raw)
	}
	return id, nil
}

// validateAddress checks an account address decodes with a valid checksum
func validateAddress(address string) error {
	if _, err := types.DecodeAddress(address); err != nil {
		return fmt.Errorf("invalid address %q: %w", address, err)
	}
	return nil
}
