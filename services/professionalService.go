package services

import (
	"context"

	"IrisCare/models"
	"IrisCare/repositories"
	"IrisCare/utils"
)

// ProfessionalService wraps the professional record store with validation and the
// administrator approval operations.
type ProfessionalService struct {
	repository repositories.ProfessionalRepository
}

func NewProfessionalService(repository repositories.ProfessionalRepository) *ProfessionalService {
	return &ProfessionalService{repository: repository}
}

// Create validates the registration fields and stores the professional. The
// repository withholds approval regardless of the submitted flag.
func (s *ProfessionalService) Create(ctx context.Context, professional *models.Professional) (*models.Professional, error) {
	if err := utils.ValidateProfessional(*professional); err != nil {
		return nil, err
	}
	return s.repository.Create(ctx, professional)
}

func (s *ProfessionalService) GetAll(ctx context.Context) []models.Professional {
	return s.repository.List(ctx)
}

func (s *ProfessionalService) GetByID(ctx context.Context, id string) *models.Professional {
	return s.repository.FindByID(ctx, id)
}

func (s *ProfessionalService) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Professional, error) {
	return s.repository.Update(ctx, id, patch)
}

func (s *ProfessionalService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repository.Remove(ctx, id)
}

func (s *ProfessionalService) Pending(ctx context.Context) []models.Professional {
	return s.repository.Pending(ctx)
}

func (s *ProfessionalService) Approved(ctx context.Context) []models.Professional {
	return s.repository.Approved(ctx)
}

// Approve grants system access. Returns (nil, nil) for an unknown id.
func (s *ProfessionalService) Approve(ctx context.Context, id string) (*models.Professional, error) {
	return s.repository.Update(ctx, id, map[string]interface{}{"approved": true})
}

// Reject removes the registration outright; rejection is deletion, not a state.
func (s *ProfessionalService) Reject(ctx context.Context, id string) (bool, error) {
	return s.repository.Remove(ctx, id)
}

// AssignPatient links a patient to the professional's caseload.
func (s *ProfessionalService) AssignPatient(ctx context.Context, professionalID, patientID string) (*models.Professional, error) {
	professional := s.repository.FindByID(ctx, professionalID)
	if professional == nil {
		return nil, nil
	}
	for _, existing := range professional.PatientIDs {
		if existing == patientID {
			return professional, nil
		}
	}
	ids := append(professional.PatientIDs, patientID)
	return s.repository.Update(ctx, professionalID, map[string]interface{}{"patients": ids})
}
