package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"lumiere/services/storage"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StorageHandler struct {
	Storage storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: svc}
}

// UploadImageHandler handles POST /api/uploads. Multipart field "file";
// optional "folder" selects the destination folder (hair-photos, services,
// banners, gallery). Returns the durable URL.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "uploads"
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to buffer upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, folder)
	if err != nil {
		logger.Error("Blob upload failed", zap.String("folder", folder), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// DeleteImageHandler handles DELETE /api/admin/uploads/*publicId. The
// wildcard carries the blob's public ID, which may contain folder slashes.
func (h *StorageHandler) DeleteImageHandler(c *gin.Context) {
	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public ID is required"})
		return
	}
	if err := h.Storage.DeleteFile(c.Request.Context(), publicID); err != nil {
		utils.GetLogger().Error("Blob delete failed", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

// ResolveImageURLHandler handles GET /api/uploads/url/*publicId and returns
// the public delivery URL for a stored image.
func (h *StorageHandler) ResolveImageURLHandler(c *gin.Context) {
	publicID := strings.TrimPrefix(c.Param("publicId"), "/")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "public ID is required"})
		return
	}
	url, err := h.Storage.GetDownloadURL(c.Request.Context(), publicID)
	if err != nil {
		utils.GetLogger().Error("URL resolution failed", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not resolve URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
