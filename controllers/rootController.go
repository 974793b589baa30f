package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rootHandler answers the public entry page, which is also where expired
// sessions are redirected.
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "iriscare", "status": "ok"})
}

func healthHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

// SetupRootRoute sets up the public routes for the application.
func SetupRootRoute(router *gin.Engine) {
	router.GET("/", rootHandler)
	router.GET("/health", healthHandler)
}
