package handlers

import (
	"net/http"

	"lumiere/services/chat"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	Chat chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Chat: svc}
}

func isAdmin(c *gin.Context) bool {
	raw, exists := c.Get("isAdmin")
	if !exists {
		return false
	}
	admin, ok := raw.(bool)
	return ok && admin
}

// SendMessageHandler handles POST /api/appointments/:id/messages.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	senderID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.Chat.Send(senderID, c.Param("id"), req.Text, isAdmin(c))
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListMessagesHandler handles GET /api/appointments/:id/messages.
func (h *ChatHandler) ListMessagesHandler(c *gin.Context) {
	readerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}
	msgs, err := h.Chat.List(readerID, c.Param("id"), isAdmin(c))
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkReadHandler handles POST /api/appointments/:id/messages/read.
func (h *ChatHandler) MarkReadHandler(c *gin.Context) {
	readerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}
	if err := h.Chat.MarkRead(readerID, c.Param("id"), isAdmin(c)); err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Messages marked read"})
}

// UnreadCountHandler handles GET /api/appointments/:id/messages/unread.
func (h *ChatHandler) UnreadCountHandler(c *gin.Context) {
	readerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}
	count, err := h.Chat.UnreadCount(readerID, c.Param("id"), isAdmin(c))
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func writeChatError(c *gin.Context, err error) {
	if _, ok := err.(chat.NotParticipantError); ok {
		utils.AuditDenied(c, "chat access", gin.H{"appointmentId": c.Param("id")})
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Error("Chat operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
