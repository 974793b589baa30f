package services

import (
	"context"
	"encoding/json"
	"fmt"

	"IrisCare/models"
	"IrisCare/repositories"
	"IrisCare/storage"
	"IrisCare/utils"
)

// ExportService turns the record collections into CSV downloads and JSON backups.
type ExportService struct {
	kv            storage.KV
	patients      repositories.PatientRepository
	professionals repositories.ProfessionalRepository
}

func NewExportService(
	kv storage.KV,
	patients repositories.PatientRepository,
	professionals repositories.ProfessionalRepository,
) *ExportService {
	return &ExportService{kv: kv, patients: patients, professionals: professionals}
}

// ExportPatientsCSV renders every patient as CSV using the raw record field names,
// so the output round-trips through the importer. Returns the download filename
// and the file content; an empty collection yields empty content.
func (s *ExportService) ExportPatientsCSV(ctx context.Context) (string, string) {
	patients := s.patients.List(ctx)
	rows := make([]utils.Row, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, utils.Row{
			{Key: "id", Value: p.ID},
			{Key: "fullName", Value: p.FullName},
			{Key: "birthDate", Value: p.BirthDate},
			{Key: "age", Value: p.Age},
			{Key: "cpf", Value: p.CPF},
			{Key: "fatherName", Value: p.FatherName},
			{Key: "motherName", Value: p.MotherName},
			{Key: "phone1", Value: p.Phone1},
			{Key: "phone2", Value: p.Phone2},
			{Key: "createdAt", Value: p.CreatedAt},
			{Key: "updatedAt", Value: p.UpdatedAt},
		})
	}
	return utils.CSVFilename("patients"), utils.ToCSV(rows)
}

// ExportProfessionalsCSV renders every professional as CSV. The approved flag is
// emitted bare (true/false) and parses back on import.
func (s *ExportService) ExportProfessionalsCSV(ctx context.Context) (string, string) {
	professionals := s.professionals.List(ctx)
	rows := make([]utils.Row, 0, len(professionals))
	for _, p := range professionals {
		rows = append(rows, utils.Row{
			{Key: "id", Value: p.ID},
			{Key: "fullName", Value: p.FullName},
			{Key: "cpf", Value: p.CPF},
			{Key: "birthDate", Value: p.BirthDate},
			{Key: "course", Value: p.Course},
			{Key: "phone", Value: p.Phone},
			{Key: "approved", Value: p.Approved},
			{Key: "createdAt", Value: p.CreatedAt},
			{Key: "updatedAt", Value: p.UpdatedAt},
		})
	}
	return utils.CSVFilename("professionals"), utils.ToCSV(rows)
}

// ExportAllJSON bundles both collections with the export date, pretty-printed.
func (s *ExportService) ExportAllJSON(ctx context.Context) (string, error) {
	payload := map[string]interface{}{
		"patients":      s.patients.List(ctx),
		"professionals": s.professionals.List(ctx),
		"exportDate":    utils.NowISO(),
	}
	blob, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}
	return string(blob), nil
}

// ImportAllJSON restores the collections present in a JSON backup. Collections
// absent from the payload are left untouched.
func (s *ExportService) ImportAllJSON(ctx context.Context, data string) error {
	var payload struct {
		Patients      []models.Patient      `json:"patients"`
		Professionals []models.Professional `json:"professionals"`
	}
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return fmt.Errorf("failed to parse backup: %w", err)
	}
	if payload.Patients != nil {
		if err := s.patients.Replace(ctx, payload.Patients); err != nil {
			return err
		}
	}
	if payload.Professionals != nil {
		if err := s.professionals.Replace(ctx, payload.Professionals); err != nil {
			return err
		}
	}
	return nil
}

// ClearAllData wipes every stored collection and the session markers.
func (s *ExportService) ClearAllData(ctx context.Context) error {
	keys := []string{
		storage.KeyPatients,
		storage.KeyProfessionals,
		storage.KeyMessages,
		storage.KeyCurrentUser,
		storage.KeySessionTimestamp,
		storage.KeyAdminSession,
	}
	for _, key := range keys {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}
