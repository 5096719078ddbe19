package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wisewallet/backend/internal/service"
)

// ChatHandler forwards chat messages to the generative provider.
type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatSendRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req chatSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.NewValidationError("invalid request body: %v", err))
		return
	}

	reply, err := h.chat.Send(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
