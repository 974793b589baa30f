package handlers

import (
	"github.com/gin-gonic/gin"

	"IrisCare/services"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	UserType   string `json:"userType"`
	Password   string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	ok, err := h.service.Login(c, req.Identifier, req.UserType, req.Password)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(401, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(200, h.service.CurrentUser(c))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(c)
	c.JSON(200, gin.H{"message": "logged out"})
}

// Session reports the currently authenticated user, if any.
func (h *AuthHandler) Session(c *gin.Context) {
	user := h.service.CurrentUser(c)
	if user == nil {
		c.JSON(401, gin.H{"error": "no active session"})
		return
	}
	c.JSON(200, user)
}
