package handlers

import (
	"net/http"

	"lumiere/models"
	"lumiere/services/settings"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	Settings settings.SettingsService
}

func NewSettingsHandler(svc settings.SettingsService) *SettingsHandler {
	return &SettingsHandler{Settings: svc}
}

// GetBusinessHoursHandler handles GET /api/settings/business-hours.
// Missing config returns an empty object, not an error; the booking flow
// fails closed on its own.
func (h *SettingsHandler) GetBusinessHoursHandler(c *gin.Context) {
	hours, err := h.Settings.GetBusinessHours()
	if err != nil {
		utils.GetLogger().Error("Failed to load business hours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load business hours"})
		return
	}
	if hours == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, hours)
}

// UpdateBusinessHoursHandler handles PUT /api/admin/settings/business-hours.
func (h *SettingsHandler) UpdateBusinessHoursHandler(c *gin.Context) {
	var req settings.BusinessHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hours, err := h.Settings.UpdateBusinessHours(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hours)
}

// GetThemeHandler handles GET /api/settings/theme.
func (h *SettingsHandler) GetThemeHandler(c *gin.Context) {
	theme, err := h.Settings.GetTheme()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load theme"})
		return
	}
	if theme == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, theme)
}

// UpdateThemeHandler handles PUT /api/admin/settings/theme. Colors may be
// submitted as hex or HSL; the response always carries both.
func (h *SettingsHandler) UpdateThemeHandler(c *gin.Context) {
	var req settings.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	theme, err := h.Settings.UpdateTheme(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, theme)
}

// GetHeroBannerHandler handles GET /api/settings/hero-banner.
func (h *SettingsHandler) GetHeroBannerHandler(c *gin.Context) {
	banner, err := h.Settings.GetHeroBanner()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load banner"})
		return
	}
	if banner == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, banner)
}

// UpdateHeroBannerHandler handles PUT /api/admin/settings/hero-banner.
func (h *SettingsHandler) UpdateHeroBannerHandler(c *gin.Context) {
	var banner models.HeroBanner
	if err := c.ShouldBindJSON(&banner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Settings.UpdateHeroBanner(banner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, banner)
}

// GetSocialLinksHandler handles GET /api/settings/social-links.
func (h *SettingsHandler) GetSocialLinksHandler(c *gin.Context) {
	links, err := h.Settings.GetSocialLinks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load social links"})
		return
	}
	if links == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, links)
}

// UpdateSocialLinksHandler handles PUT /api/admin/settings/social-links.
func (h *SettingsHandler) UpdateSocialLinksHandler(c *gin.Context) {
	var links models.SocialLinks
	if err := c.ShouldBindJSON(&links); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Settings.UpdateSocialLinks(links); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, links)
}

// ListGalleryHandler handles GET /api/settings/gallery.
func (h *SettingsHandler) ListGalleryHandler(c *gin.Context) {
	images, err := h.Settings.ListGallery()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// AddGalleryImageHandler handles POST /api/admin/settings/gallery.
func (h *SettingsHandler) AddGalleryImageHandler(c *gin.Context) {
	var req struct {
		ImageURL string `json:"imageUrl" binding:"required,url"`
		Caption  string `json:"caption"`
		Position int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	img, err := h.Settings.AddGalleryImage(req.ImageURL, req.Caption, req.Position)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, img)
}

// DeleteGalleryImageHandler handles DELETE /api/admin/settings/gallery/:id.
func (h *SettingsHandler) DeleteGalleryImageHandler(c *gin.Context) {
	if err := h.Settings.DeleteGalleryImage(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image removed"})
}
