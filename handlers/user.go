package handlers

import (
	"net/http"

	"lumiere/services/user"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(userService user.UserService) *UserHandler {
	return &UserHandler{UserService: userService}
}

// currentUserID pulls the authenticated user ID out of the request context.
func currentUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := raw.(string)
	return id, ok && id != ""
}

// GetProfileHandler handles GET /api/users/me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}
	usr, err := h.UserService.GetUserByID(id)
	if err != nil {
		utils.GetLogger().Error("User not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr.PublicProfile())
}

// UpdateProfileHandler handles PUT /api/users/me.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var req user.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr, err := h.UserService.UpdateProfile(id, req)
	if err != nil {
		utils.GetLogger().Error("Profile update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr.PublicProfile())
}

// UpdatePasswordHandler handles PUT /api/users/me/password.
// It expects a JSON payload with "currentPassword" and "newPassword".
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.UserService.UpdatePassword(id, req.CurrentPassword, req.NewPassword); err != nil {
		if _, ok := err.(user.AuthError); ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password does not match"})
			return
		}
		utils.GetLogger().Error("Password update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated; please sign in again"})
}

// DeleteAccountHandler handles DELETE /api/users/me.
func (h *UserHandler) DeleteAccountHandler(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}
	if err := h.UserService.DeleteUser(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// SignOutHandler handles POST /api/users/me/signout.
func (h *UserHandler) SignOutHandler(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}
	if err := h.UserService.RevokeAuthToken(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
