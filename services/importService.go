package services

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/google/uuid"

	"IrisCare/models"
	"IrisCare/repositories"
	"IrisCare/utils"
)

// ImportService loads records from CSV text. Rows are schema-checked before being
// accepted; rejected rows are skipped, not fatal.
type ImportService struct {
	patients      repositories.PatientRepository
	professionals repositories.ProfessionalRepository
}

func NewImportService(
	patients repositories.PatientRepository,
	professionals repositories.ProfessionalRepository,
) *ImportService {
	return &ImportService{patients: patients, professionals: professionals}
}

// ImportPatientsCSV parses text and appends every row that passes the required
// field check. Rows without an id or createdAt get fresh ones; updatedAt is always
// refreshed. Returns the number of records imported.
func (s *ImportService) ImportPatientsCSV(ctx context.Context, text string) (int, error) {
	rows, err := utils.ParseCSV(text)
	if err != nil {
		return 0, err
	}

	patients := s.patients.List(ctx)
	imported := 0
	for _, row := range rows {
		if err := utils.ValidateImportRow(row); err != nil {
			log.Printf("Skipping patient row: %v", err)
			continue
		}
		patient := models.Patient{
			ID:         row["id"],
			FullName:   row["fullName"],
			BirthDate:  row["birthDate"],
			CPF:        row["cpf"],
			FatherName: row["fatherName"],
			MotherName: row["motherName"],
			Phone1:     row["phone1"],
			Phone2:     row["phone2"],
			CreatedAt:  row["createdAt"],
		}
		if age, err := strconv.Atoi(row["age"]); err == nil {
			patient.Age = age
		} else {
			patient.Age = utils.CalculateAge(patient.BirthDate)
		}
		fillImportStamps(&patient.ID, &patient.CreatedAt, &patient.UpdatedAt)
		patients = append(patients, patient)
		imported++
	}
	if imported == 0 {
		return 0, errors.New("no valid records found in file")
	}
	return imported, s.patients.Replace(ctx, patients)
}

// ImportProfessionalsCSV parses text and appends every valid row. The approved
// flag is recognized from the literal strings "true" and "1".
func (s *ImportService) ImportProfessionalsCSV(ctx context.Context, text string) (int, error) {
	rows, err := utils.ParseCSV(text)
	if err != nil {
		return 0, err
	}

	professionals := s.professionals.List(ctx)
	imported := 0
	for _, row := range rows {
		if err := utils.ValidateImportRow(row); err != nil {
			log.Printf("Skipping professional row: %v", err)
			continue
		}
		professional := models.Professional{
			ID:        row["id"],
			FullName:  row["fullName"],
			CPF:       row["cpf"],
			BirthDate: row["birthDate"],
			Course:    row["course"],
			Phone:     row["phone"],
			Password:  row["password"],
			Approved:  row["approved"] == "true" || row["approved"] == "1",
			CreatedAt: row["createdAt"],
		}
		fillImportStamps(&professional.ID, &professional.CreatedAt, &professional.UpdatedAt)
		professionals = append(professionals, professional)
		imported++
	}
	if imported == 0 {
		return 0, errors.New("no valid records found in file")
	}
	return imported, s.professionals.Replace(ctx, professionals)
}

func fillImportStamps(id, createdAt, updatedAt *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if *createdAt == "" {
		*createdAt = utils.NowISO()
	}
	*updatedAt = utils.NowISO()
}
