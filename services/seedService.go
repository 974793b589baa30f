package services

import (
	"context"
	"log"

	"IrisCare/models"
	"IrisCare/repositories"
	"IrisCare/utils"
)

// SeedSampleData populates empty collections with one sample patient and one
// pre-approved professional. Intended for development setups only.
func SeedSampleData(
	ctx context.Context,
	patients repositories.PatientRepository,
	professionals repositories.ProfessionalRepository,
) {
	if len(patients.List(ctx)) == 0 {
		patient := &models.Patient{
			FullName:   "Maria Silva Santos",
			BirthDate:  "1985-03-15",
			Age:        utils.CalculateAge("1985-03-15"),
			CPF:        "529.982.247-25",
			FatherName: "João Santos",
			MotherName: "Ana Silva",
			Phone1:     "(11) 99999-9999",
			Phone2:     "(11) 88888-8888",
		}
		if _, err := patients.Create(ctx, patient); err != nil {
			log.Printf("Failed to seed sample patient: %v", err)
		}
	}

	if len(professionals.List(ctx)) == 0 {
		professional := &models.Professional{
			FullName:  "Dr. Carlos Oliveira",
			CPF:       "111.444.777-35",
			BirthDate: "1980-01-01",
			Course:    "Pós-graduação em Neuropsicopedagogia",
			Phone:     "(11) 77777-7777",
			Password:  "123456",
		}
		created, err := professionals.Create(ctx, professional)
		if err != nil {
			log.Printf("Failed to seed sample professional: %v", err)
			return
		}
		// Approved immediately so the sample account can log in.
		if _, err := professionals.Update(ctx, created.ID, map[string]interface{}{"approved": true}); err != nil {
			log.Printf("Failed to approve sample professional: %v", err)
		}
	}
}
