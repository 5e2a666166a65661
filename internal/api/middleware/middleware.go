package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/api/shared/constants"
	apierrors "github.com/ardhichain/ardhi-registry/internal/api/shared/errors"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

const REQUEST_ID_KEY contextKey = "request_id"

// RequestID assigns every request an id, reusing one supplied by the client
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = ulid.Make().String()
		}

		c.Set(string(REQUEST_ID_KEY), requestID)
		c.Header(constants.REQUEST_ID_HEADER, requestID)

		ctx := context.WithValue(c.Request.Context(), REQUEST_ID_KEY, requestID)
		if hub := sentry.CurrentHub(); hub != nil {
			hub = hub.Clone()
			hub.Scope().SetTag("request_id", requestID)
			ctx = sentry.SetHubOnContext(ctx, hub)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.InfoCtx(c.Request.Context(), "API request",
			zap.String("request_id", c.GetString(string(REQUEST_ID_KEY))),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				apiErr := apierrors.NewInternalError("Internal server error")
				c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
			}
		}()
		c.Next()
	}
}
