package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/api/middleware"
	"github.com/ardhichain/ardhi-registry/internal/api/shared/dto"
	"github.com/ardhichain/ardhi-registry/internal/api/shared/executor"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetTitle retrieves the public record of a title
	// GET /api/v1/titles/:asset_id
	GetTitle(c *gin.Context)

	// ListTitles retrieves titles by unit name
	// GET /api/v1/titles?unit=<unit>
	ListTitles(c *gin.Context)

	// GetAccountTitles retrieves the titles held by an address
	// GET /api/v1/accounts/:address/titles
	GetAccountTitles(c *gin.Context)

	// GetContractTitles retrieves the titles held by the registry application
	// GET /api/v1/contract/titles
	GetContractTitles(c *gin.Context)

	// StartMigration migrates content between storage providers (requires authentication)
	// POST /api/v1/migrations
	StartMigration(c *gin.Context)

	// ListMigrations retrieves recent migration runs (requires authentication)
	// GET /api/v1/migrations?limit=<limit>
	ListMigrations(c *gin.Context)

	// GetMigration retrieves a migration run (requires authentication)
	// GET /api/v1/migrations/:id
	GetMigration(c *gin.Context)

	// ValidateMigration validates the content of a migration run (requires authentication)
	// POST /api/v1/migrations/:id/validate
	ValidateMigration(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) GetTitle(c *gin.Context) {
	assetID, err := parseAssetID(c.Param("asset_id"))
	if err != nil {
		respondBadRequest(c, "Invalid asset id", err.Error())
		return
	}

	record, err := h.executor.GetTitle(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, err, "Failed to verify title", zap.Uint64("assetID", assetID))
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *handler) ListTitles(c *gin.Context) {
	queryParams, err := ParseListTitlesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.SearchTitles(c.Request.Context(), queryParams.Unit)
	if err != nil {
		respondError(c, err, "Failed to list titles")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetAccountTitles(c *gin.Context) {
	address := strings.TrimSpace(c.Param("address"))
	if err := validateAddress(address); err != nil {
		respondBadRequest(c, "Invalid address", err.Error())
		return
	}

	response, err := h.executor.GetAccountTitles(c.Request.Context(), address)
	if err != nil {
		respondError(c, err, "Failed to list account titles", zap.String("address", address))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetContractTitles(c *gin.Context) {
	response, err := h.executor.GetContractTitles(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list contract titles")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) StartMigration(c *gin.Context) {
	var req dto.StartMigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	logger.InfoCtx(c.Request.Context(), "Migration requested",
		zap.String("subject", middleware.AuthSubject(c)),
		zap.String("source", req.Source),
		zap.String("target", req.Target),
		zap.Int("items", len(req.CIDs)))

	response, err := h.executor.StartMigration(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to run migration")
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) ListMigrations(c *gin.Context) {
	queryParams, err := ParseListMigrationsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListMigrations(c.Request.Context(), queryParams.Limit)
	if err != nil {
		respondError(c, err, "Failed to list migration runs")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetMigration(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondBadRequest(c, "Migration id is required")
		return
	}

	response, err := h.executor.GetMigration(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get migration run", zap.String("id", id))
		return
	}
	if response == nil {
		respondNotFound(c, "Migration run not found", id)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ValidateMigration(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondBadRequest(c, "Migration id is required")
		return
	}

	report, err := h.executor.ValidateMigration(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to validate migration run", zap.String("id", id))
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *handler) HealthCheck(c *gin.Context) {
	response := h.executor.Health(c.Request.Context())

	status := http.StatusOK
	if !response.StorageReachable {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}
