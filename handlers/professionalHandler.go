package handlers

import (
	"github.com/gin-gonic/gin"

	"IrisCare/models"
	"IrisCare/services"
)

type ProfessionalHandler struct {
	service *services.ProfessionalService
}

func NewProfessionalHandler(service *services.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{service: service}
}

func (h *ProfessionalHandler) CreateProfessional(c *gin.Context) {
	var professional models.Professional
	if err := c.ShouldBindJSON(&professional); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.Create(c, &professional)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, created)
}

func (h *ProfessionalHandler) GetAllProfessionals(c *gin.Context) {
	c.JSON(200, h.service.GetAll(c))
}

func (h *ProfessionalHandler) GetProfessionalByID(c *gin.Context) {
	professional := h.service.GetByID(c, c.Param("professional_id"))
	if professional == nil {
		c.JSON(404, gin.H{"error": "Professional not found"})
		return
	}
	c.JSON(200, professional)
}

func (h *ProfessionalHandler) UpdateProfessional(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	professional, err := h.service.Update(c, c.Param("professional_id"), patch)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if professional == nil {
		c.JSON(404, gin.H{"error": "Professional not found"})
		return
	}
	c.JSON(200, professional)
}

func (h *ProfessionalHandler) DeleteProfessional(c *gin.Context) {
	removed, err := h.service.Delete(c, c.Param("professional_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(404, gin.H{"error": "Professional not found"})
		return
	}
	c.JSON(204, gin.H{"message": "Professional deleted"})
}

func (h *ProfessionalHandler) GetPendingProfessionals(c *gin.Context) {
	c.JSON(200, h.service.Pending(c))
}

func (h *ProfessionalHandler) GetApprovedProfessionals(c *gin.Context) {
	c.JSON(200, h.service.Approved(c))
}

// ApproveProfessional grants system access to a pending registration.
func (h *ProfessionalHandler) ApproveProfessional(c *gin.Context) {
	professional, err := h.service.Approve(c, c.Param("professional_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if professional == nil {
		c.JSON(404, gin.H{"error": "Professional not found"})
		return
	}
	c.JSON(200, professional)
}

// RejectProfessional removes a registration outright.
func (h *ProfessionalHandler) RejectProfessional(c *gin.Context) {
	removed, err := h.service.Reject(c, c.Param("professional_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(404, gin.H{"error": "Professional not found"})
		return
	}
	c.JSON(204, gin.H{"message": "Professional rejected"})
}

func (h *ProfessionalHandler) AssignPatient(c *gin.Context) {
	professional, err := h.service.AssignPatient(c, c.Param("professional_id"), c.Param("patient_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if professional == nil {
		c.JSON(404, gin.H{"error": "Professional not found"})
		return
	}
	c.JSON(200, professional)
}
