package handlers

import (
	"github.com/gin-gonic/gin"

	"IrisCare/services"
)

type MessageHandler struct {
	messages *services.MessageService
	auth     *services.AuthService
}

func NewMessageHandler(messages *services.MessageService, auth *services.AuthService) *MessageHandler {
	return &MessageHandler{messages: messages, auth: auth}
}

// GetThread returns the conversation attached to a patient record.
func (h *MessageHandler) GetThread(c *gin.Context) {
	c.JSON(200, h.messages.Thread(c, c.Param("patient_id")))
}

type sendMessageRequest struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	sender := h.auth.CurrentUser(c)
	if sender == nil {
		c.JSON(401, gin.H{"error": "no active session"})
		return
	}
	message, err := h.messages.Send(c, c.Param("patient_id"), *sender, req.Message, req.ImageURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, message)
}
