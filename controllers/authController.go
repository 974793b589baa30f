package controllers

import (
	"github.com/gin-gonic/gin"

	"IrisCare/handlers"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{Handler: authHandler}
}

// RegisterRoutes initializes the authentication routes directly on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth/login", ac.Handler.Login)
	router.POST("/auth/logout", ac.Handler.Logout)
	router.GET("/auth/session", ac.Handler.Session)
}
