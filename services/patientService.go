package services

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"IrisCare/models"
	"IrisCare/repositories"
	"IrisCare/utils"
)

var progressRatings = []interface{}{
	models.ProgressExcellent,
	models.ProgressGood,
	models.ProgressRegular,
	models.ProgressNeedsImprovement,
}

// PatientService wraps the patient record store with validation and the clinical
// sub-record operations.
type PatientService struct {
	repository repositories.PatientRepository
}

func NewPatientService(repository repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

// Create validates the registration fields, computes the age from the birth date
// and stores the patient. Validation failures surface as a field to message
// mapping. Duplicate CPFs are not rejected at this layer.
func (s *PatientService) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	if err := utils.ValidatePatient(*patient); err != nil {
		return nil, err
	}
	patient.Age = utils.CalculateAge(patient.BirthDate)
	return s.repository.Create(ctx, patient)
}

func (s *PatientService) GetAll(ctx context.Context) []models.Patient {
	return s.repository.List(ctx)
}

func (s *PatientService) GetByID(ctx context.Context, id string) *models.Patient {
	return s.repository.FindByID(ctx, id)
}

func (s *PatientService) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Patient, error) {
	return s.repository.Update(ctx, id, patch)
}

func (s *PatientService) Delete(ctx context.Context, id string) (bool, error) {
	return s.repository.Remove(ctx, id)
}

func (s *PatientService) Search(ctx context.Context, query string) []models.Patient {
	return s.repository.Search(ctx, query)
}

// AddMedicalReport appends a report to the patient's record. Returns (nil, nil)
// when the patient does not exist.
func (s *PatientService) AddMedicalReport(ctx context.Context, patientID string, report models.MedicalReport) (*models.Patient, error) {
	patient := s.repository.FindByID(ctx, patientID)
	if patient == nil {
		return nil, nil
	}
	report.ID = utils.NewID()
	reports := append(patient.MedicalReports, report)
	return s.repository.Update(ctx, patientID, map[string]interface{}{"medicalReports": reports})
}

// AddVaccine appends an entry to the patient's vaccination record.
func (s *PatientService) AddVaccine(ctx context.Context, patientID string, vaccine models.Vaccine) (*models.Patient, error) {
	patient := s.repository.FindByID(ctx, patientID)
	if patient == nil {
		return nil, nil
	}
	vaccine.ID = utils.NewID()
	vaccines := append(patient.Vaccines, vaccine)
	return s.repository.Update(ctx, patientID, map[string]interface{}{"vaccines": vaccines})
}

// AddActivity assigns a new activity, starting uncompleted.
func (s *PatientService) AddActivity(ctx context.Context, patientID string, activity models.Activity) (*models.Patient, error) {
	patient := s.repository.FindByID(ctx, patientID)
	if patient == nil {
		return nil, nil
	}
	activity.ID = utils.NewID()
	activity.Completed = false
	activities := append(patient.Activities, activity)
	return s.repository.Update(ctx, patientID, map[string]interface{}{"activities": activities})
}

// CompleteActivity flips the completed flag of one assigned activity.
func (s *PatientService) CompleteActivity(ctx context.Context, patientID, activityID string) (*models.Patient, error) {
	patient := s.repository.FindByID(ctx, patientID)
	if patient == nil {
		return nil, nil
	}
	found := false
	for i := range patient.Activities {
		if patient.Activities[i].ID == activityID {
			patient.Activities[i].Completed = true
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}
	return s.repository.Update(ctx, patientID, map[string]interface{}{"activities": patient.Activities})
}

// AddPhoto attaches a progress photo.
func (s *PatientService) AddPhoto(ctx context.Context, patientID string, photo models.Photo) (*models.Patient, error) {
	patient := s.repository.FindByID(ctx, patientID)
	if patient == nil {
		return nil, nil
	}
	photo.ID = utils.NewID()
	photos := append(patient.Photos, photo)
	return s.repository.Update(ctx, patientID, map[string]interface{}{"photos": photos})
}

// AddSessionLog appends a therapy session log after checking the progress rating
// against the accepted set.
func (s *PatientService) AddSessionLog(ctx context.Context, patientID string, sessionLog models.SessionLog) (*models.Patient, error) {
	if err := validation.Validate(sessionLog.Progress, validation.Required, validation.In(progressRatings...)); err != nil {
		return nil, fmt.Errorf("invalid progress rating: %w", err)
	}
	patient := s.repository.FindByID(ctx, patientID)
	if patient == nil {
		return nil, nil
	}
	sessionLog.ID = utils.NewID()
	sessions := append(patient.Sessions, sessionLog)
	return s.repository.Update(ctx, patientID, map[string]interface{}{"sessions": sessions})
}

// ScheduleNextVisit sets or replaces the patient's scheduled next visit.
func (s *PatientService) ScheduleNextVisit(ctx context.Context, patientID string, visit models.NextVisit) (*models.Patient, error) {
	patient := s.repository.FindByID(ctx, patientID)
	if patient == nil {
		return nil, nil
	}
	return s.repository.Update(ctx, patientID, map[string]interface{}{"nextVisit": visit})
}
