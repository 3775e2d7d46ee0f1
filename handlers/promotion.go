package handlers

import (
	"net/http"

	"lumiere/services/promotion"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PromotionHandler struct {
	Promotions promotion.PromotionService
}

func NewPromotionHandler(svc promotion.PromotionService) *PromotionHandler {
	return &PromotionHandler{Promotions: svc}
}

// ListActivePromotionsHandler handles GET /api/promotions.
func (h *PromotionHandler) ListActivePromotionsHandler(c *gin.Context) {
	promos, err := h.Promotions.ListActive()
	if err != nil {
		utils.GetLogger().Error("Failed to list promotions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load promotions"})
		return
	}
	c.JSON(http.StatusOK, promos)
}

// ListPromotionsHandler handles GET /api/admin/promotions.
func (h *PromotionHandler) ListPromotionsHandler(c *gin.Context) {
	promos, err := h.Promotions.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, promos)
}

// CreatePromotionHandler handles POST /api/admin/promotions. Creation
// triggers the push fan-out in the background; a delivery failure never
// fails the request.
func (h *PromotionHandler) CreatePromotionHandler(c *gin.Context) {
	var req promotion.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	promo, err := h.Promotions.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, promo)
}

// UpdatePromotionHandler handles PUT /api/admin/promotions/:id.
func (h *PromotionHandler) UpdatePromotionHandler(c *gin.Context) {
	var req promotion.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	promo, err := h.Promotions.Update(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, promo)
}

// DeletePromotionHandler handles DELETE /api/admin/promotions/:id.
func (h *PromotionHandler) DeletePromotionHandler(c *gin.Context) {
	if err := h.Promotions.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
}
