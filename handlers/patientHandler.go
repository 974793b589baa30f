package handlers

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"IrisCare/models"
	"IrisCare/services"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.Create(c, &patient)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	c.JSON(200, h.service.GetAll(c))
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient := h.service.GetByID(c, c.Param("patient_id"))
	if patient == nil {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	patient, err := h.service.Update(c, c.Param("patient_id"), patch)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if patient == nil {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	removed, err := h.service.Delete(c, c.Param("patient_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(204, gin.H{"message": "Patient deleted"})
}

func (h *PatientHandler) SearchPatients(c *gin.Context) {
	c.JSON(200, h.service.Search(c, c.Query("q")))
}

func (h *PatientHandler) AddMedicalReport(c *gin.Context) {
	var report models.MedicalReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	h.respondSubRecord(c, func() (*models.Patient, error) {
		return h.service.AddMedicalReport(c, c.Param("patient_id"), report)
	})
}

func (h *PatientHandler) AddVaccine(c *gin.Context) {
	var vaccine models.Vaccine
	if err := c.ShouldBindJSON(&vaccine); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	h.respondSubRecord(c, func() (*models.Patient, error) {
		return h.service.AddVaccine(c, c.Param("patient_id"), vaccine)
	})
}

func (h *PatientHandler) AddActivity(c *gin.Context) {
	var activity models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	h.respondSubRecord(c, func() (*models.Patient, error) {
		return h.service.AddActivity(c, c.Param("patient_id"), activity)
	})
}

func (h *PatientHandler) CompleteActivity(c *gin.Context) {
	h.respondSubRecord(c, func() (*models.Patient, error) {
		return h.service.CompleteActivity(c, c.Param("patient_id"), c.Param("activity_id"))
	})
}

func (h *PatientHandler) AddPhoto(c *gin.Context) {
	var photo models.Photo
	if err := c.ShouldBindJSON(&photo); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	h.respondSubRecord(c, func() (*models.Patient, error) {
		return h.service.AddPhoto(c, c.Param("patient_id"), photo)
	})
}

func (h *PatientHandler) AddSessionLog(c *gin.Context) {
	var sessionLog models.SessionLog
	if err := c.ShouldBindJSON(&sessionLog); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	h.respondSubRecord(c, func() (*models.Patient, error) {
		return h.service.AddSessionLog(c, c.Param("patient_id"), sessionLog)
	})
}

func (h *PatientHandler) ScheduleNextVisit(c *gin.Context) {
	var visit models.NextVisit
	if err := c.ShouldBindJSON(&visit); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	h.respondSubRecord(c, func() (*models.Patient, error) {
		return h.service.ScheduleNextVisit(c, c.Param("patient_id"), visit)
	})
}

func (h *PatientHandler) respondSubRecord(c *gin.Context, op func() (*models.Patient, error)) {
	patient, err := op()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if patient == nil {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}

// respondServiceError maps validation failures to 400 with the field to message
// mapping and everything else to 500.
func respondServiceError(c *gin.Context, err error) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		c.JSON(400, gin.H{"errors": fieldErrors})
		return
	}
	c.JSON(500, gin.H{"error": err.Error()})
}
