// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gridfit/gridfit/api/handlers"
	"github.com/gridfit/gridfit/config"
	"github.com/gridfit/gridfit/core/analysis"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(analyzer *analysis.Analyzer, defaults config.AnalysisConfig) *gin.Engine {
	if os.Getenv("APP_ENV") != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	analysisHandler := handlers.NewAnalysisHandler(analyzer, defaults)
	catalogHandler := handlers.NewCatalogHandler()

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyses", analysisHandler.RunAnalysis)
		v1.GET("/heatpumps", catalogHandler.ListHeatPumps)
		v1.GET("/buildingtypes", catalogHandler.ListBuildingTypes)
		v1.GET("/connections", catalogHandler.ListConnections)
		v1.GET("/bivalentpoints", catalogHandler.ListBivalentPoints)
	}
	return router
}
