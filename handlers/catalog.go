package handlers

import (
	"net/http"

	"lumiere/services/catalog"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ListServicesHandler handles GET /api/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Catalog.List()
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateServiceHandler handles POST /api/admin/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var req catalog.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc, err := h.Catalog.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /api/admin/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var req catalog.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc, err := h.Catalog.Update(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/admin/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Catalog.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
