package handlers

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"IrisCare/services"
	"IrisCare/utils"
)

// ExportHandler serves the data-management endpoints: CSV download and upload
// per collection, whole-store JSON backup and restore, and the destructive
// clear-all used when retiring an installation.
type ExportHandler struct {
	exports *services.ExportService
	imports *services.ImportService
}

func NewExportHandler(exports *services.ExportService, imports *services.ImportService) *ExportHandler {
	return &ExportHandler{exports: exports, imports: imports}
}

func (h *ExportHandler) ExportPatientsCSV(c *gin.Context) {
	filename, content := h.exports.ExportPatientsCSV(c)
	writeCSV(c, filename, content)
}

func (h *ExportHandler) ExportProfessionalsCSV(c *gin.Context) {
	filename, content := h.exports.ExportProfessionalsCSV(c)
	writeCSV(c, filename, content)
}

func writeCSV(c *gin.Context, filename, content string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, utils.CSVContentType, []byte(content))
}

func (h *ExportHandler) ImportPatientsCSV(c *gin.Context) {
	text, err := readBody(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	count, err := h.imports.ImportPatientsCSV(c, text)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"imported": count})
}

func (h *ExportHandler) ImportProfessionalsCSV(c *gin.Context) {
	text, err := readBody(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	count, err := h.imports.ImportProfessionalsCSV(c, text)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"imported": count})
}

func (h *ExportHandler) BackupJSON(c *gin.Context) {
	backup, err := h.exports.ExportAllJSON(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="iriscare_backup.json"`)
	c.Data(200, "application/json", []byte(backup))
}

func (h *ExportHandler) RestoreJSON(c *gin.Context) {
	text, err := readBody(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.exports.ImportAllJSON(c, text); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "backup restored"})
}

func (h *ExportHandler) ClearAllData(c *gin.Context) {
	if err := h.exports.ClearAllData(c); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "all data cleared"})
}

func readBody(c *gin.Context) (string, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
