package handlers

import (
	"net/http"

	"lumiere/services/user"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	UserService user.UserService
}

func NewAuthHandler(userService user.UserService) *AuthHandler {
	return &AuthHandler{UserService: userService}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req user.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.UserService.Register(req)
	if err != nil {
		if _, ok := err.(user.DuplicateEmailError); ok {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		if _, ok := err.(user.AuthError); ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		utils.GetLogger().Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed, please try again"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GrantAdminHandler handles POST /api/auth/grant-admin. The bootstrap key in
// the payload is the only credential; this route is for ops use and is rate
// limited like everything else.
func (h *AuthHandler) GrantAdminHandler(c *gin.Context) {
	var req struct {
		Email        string `json:"email" binding:"required,email"`
		BootstrapKey string `json:"bootstrapKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.UserService.GrantAdmin(req.Email, req.BootstrapKey); err != nil {
		if _, ok := err.(user.AuthError); ok {
			utils.AuditDenied(c, "grant admin", gin.H{"email": req.Email})
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid bootstrap key"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin granted"})
}
