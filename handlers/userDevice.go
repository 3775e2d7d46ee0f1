package handlers

import (
	"net/http"

	"lumiere/services/user"

	"github.com/gin-gonic/gin"
)

type UserDeviceHandler struct {
	UserService user.UserService
}

func NewUserDeviceHandler(userService user.UserService) *UserDeviceHandler {
	return &UserDeviceHandler{UserService: userService}
}

// SubscribeTokenHandler handles POST /api/users/me/push-tokens.
// Subscribing the same token again is a no-op thanks to set semantics.
func (h *UserDeviceHandler) SubscribeTokenHandler(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.UserService.SubscribeToken(id, req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Push notifications enabled"})
}

// UnsubscribeTokenHandler handles DELETE /api/users/me/push-tokens.
func (h *UserDeviceHandler) UnsubscribeTokenHandler(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.UserService.UnsubscribeToken(id, req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Push notifications disabled"})
}
