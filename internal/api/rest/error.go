package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/ardhichain/ardhi-registry/internal/api/shared/errors"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.Status, errorResponse{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, apierrors.NewValidationError(details))
}

// respondError maps err onto an API error. Server side failures are logged.
func respondError(c *gin.Context, err error, message string, fields ...zap.Field) {
	apiErr := apierrors.FromError(err, message)
	if apiErr.Status >= 500 {
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.Request.URL.Path))...)
	}
	respondWithError(c, apiErr)
}
