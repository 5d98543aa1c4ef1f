package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gridfit/gridfit/api/models"
	"github.com/gridfit/gridfit/core/refdata"
)

// CatalogHandler serves the reference catalogs
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func catalogError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "CATALOG_UNAVAILABLE",
			Message: err.Error(),
		},
	})
}

// ListHeatPumps handles GET /api/v1/heatpumps
func (h *CatalogHandler) ListHeatPumps(c *gin.Context) {
	if err := refdata.Load(); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"heat_pumps": refdata.HeatPumps()})
}

// ListBuildingTypes handles GET /api/v1/buildingtypes
func (h *CatalogHandler) ListBuildingTypes(c *gin.Context) {
	if err := refdata.Load(); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"building_types": refdata.BuildingTypes()})
}

// ListConnections handles GET /api/v1/connections
func (h *CatalogHandler) ListConnections(c *gin.Context) {
	if err := refdata.Load(); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"connections": refdata.GridConnections()})
}

// ListBivalentPoints handles GET /api/v1/bivalentpoints
func (h *CatalogHandler) ListBivalentPoints(c *gin.Context) {
	if err := refdata.Load(); err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bivalent_points": refdata.BivalentPoints()})
}
