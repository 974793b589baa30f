package controllers

import (
	"github.com/gin-gonic/gin"

	"IrisCare/handlers"
	"IrisCare/middlewares"
	"IrisCare/models"
	"IrisCare/services"
)

// SetupProfessionalRoutes wires the professional registry endpoints. The
// approval workflow routes are restricted to the administrator session.
func SetupProfessionalRoutes(router *gin.Engine, auth *services.AuthService, professionalHandler *handlers.ProfessionalHandler, exportHandler *handlers.ExportHandler) {
	router.POST("/professionals", professionalHandler.CreateProfessional)
	router.GET("/professionals", professionalHandler.GetAllProfessionals)
	router.GET("/professionals/approved", professionalHandler.GetApprovedProfessionals)
	router.GET("/professionals/:professional_id", professionalHandler.GetProfessionalByID)
	router.PUT("/professionals/:professional_id", professionalHandler.UpdateProfessional)
	router.DELETE("/professionals/:professional_id", professionalHandler.DeleteProfessional)
	router.PUT("/professionals/:professional_id/patients/:patient_id", professionalHandler.AssignPatient)

	adminGroup := router.Group("/admin").Use(middlewares.RequireRole(auth, models.UserTypeAdmin))
	{
		adminGroup.GET("/professionals/pending", professionalHandler.GetPendingProfessionals)
		adminGroup.PUT("/professionals/:professional_id/approve", professionalHandler.ApproveProfessional)
		adminGroup.DELETE("/professionals/:professional_id/reject", professionalHandler.RejectProfessional)

		adminGroup.GET("/export/patients.csv", exportHandler.ExportPatientsCSV)
		adminGroup.GET("/export/professionals.csv", exportHandler.ExportProfessionalsCSV)
		adminGroup.POST("/import/patients.csv", exportHandler.ImportPatientsCSV)
		adminGroup.POST("/import/professionals.csv", exportHandler.ImportProfessionalsCSV)
		adminGroup.GET("/backup", exportHandler.BackupJSON)
		adminGroup.POST("/restore", exportHandler.RestoreJSON)
		adminGroup.DELETE("/data", exportHandler.ClearAllData)
	}
}
