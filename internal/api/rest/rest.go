package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes. auth guards the migration endpoints.
func SetupRoutes(router *gin.Engine, handler Handler, auth gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Title verification (public read access)
		v1.GET("/titles/:asset_id", handler.GetTitle)
		v1.GET("/titles", handler.ListTitles)
		v1.GET("/accounts/:address/titles", handler.GetAccountTitles)
		v1.GET("/contract/titles", handler.GetContractTitles)

		// Content migration (requires authentication)
		migrations := v1.Group("/migrations", auth)
		{
			migrations.POST("", handler.StartMigration)
			migrations.GET("", handler.ListMigrations)
			migrations.GET("/:id", handler.GetMigration)
			migrations.POST("/:id/validate", handler.ValidateMigration)
		}
	}
}
