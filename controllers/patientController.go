package controllers

import (
	"github.com/gin-gonic/gin"

	"IrisCare/handlers"
	"IrisCare/middlewares"
	"IrisCare/models"
	"IrisCare/services"
)

// SetupPatientRoutes wires the patient record endpoints, including the
// sub-record operations that append to a patient's clinical history and the
// message thread attached to each record.
func SetupPatientRoutes(router *gin.Engine, auth *services.AuthService, patientHandler *handlers.PatientHandler, messageHandler *handlers.MessageHandler) {
	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients", patientHandler.GetAllPatients)
	router.GET("/patients/search", patientHandler.SearchPatients)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:patient_id", patientHandler.DeletePatient)

	router.POST("/patients/:patient_id/medical_reports", patientHandler.AddMedicalReport)
	router.POST("/patients/:patient_id/vaccines", patientHandler.AddVaccine)
	router.POST("/patients/:patient_id/activities", patientHandler.AddActivity)
	router.PUT("/patients/:patient_id/activities/:activity_id/complete", patientHandler.CompleteActivity)
	router.POST("/patients/:patient_id/photos", patientHandler.AddPhoto)
	router.POST("/patients/:patient_id/session_logs", patientHandler.AddSessionLog)
	router.PUT("/patients/:patient_id/next_visit", patientHandler.ScheduleNextVisit)

	router.GET("/patients/:patient_id/messages", messageHandler.GetThread)
	router.POST("/patients/:patient_id/messages", messageHandler.SendMessage)

	// Dashboard entry points guarded by role. The API itself stays open to
	// the single-machine UI; these anchor the post-login redirects.
	router.GET("/patient/dashboard", middlewares.RequireRole(auth, models.UserTypePatient), dashboardHandler(models.UserTypePatient))
	router.GET("/professional/dashboard", middlewares.RequireRole(auth, models.UserTypeProfessional), dashboardHandler(models.UserTypeProfessional))
	router.GET("/admin/dashboard", middlewares.RequireRole(auth, models.UserTypeAdmin), dashboardHandler(models.UserTypeAdmin))
}

func dashboardHandler(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"dashboard": userType})
	}
}
