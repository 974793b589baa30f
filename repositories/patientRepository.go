package repositories

import (
	"context"
	"strings"

	"IrisCare/models"
	"IrisCare/storage"
)

// PatientRepository is the record store for patients.
type PatientRepository interface {
	List(ctx context.Context) []models.Patient
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Patient, error)
	Remove(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) *models.Patient
	FindByIdentifier(ctx context.Context, identifier string) *models.Patient
	Search(ctx context.Context, query string) []models.Patient
	Replace(ctx context.Context, patients []models.Patient) error
}

type kvPatientRepository struct {
	store *ListStore[models.Patient, *models.Patient]
}

// NewPatientRepository builds the key-value backed patient store.
func NewPatientRepository(kv storage.KV) PatientRepository {
	return &kvPatientRepository{
		store: NewListStore[models.Patient, *models.Patient](kv, storage.KeyPatients),
	}
}

func (r *kvPatientRepository) List(ctx context.Context) []models.Patient {
	return r.store.List(ctx)
}

func (r *kvPatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	return r.store.Create(ctx, patient)
}

func (r *kvPatientRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Patient, error) {
	return r.store.Update(ctx, id, patch)
}

func (r *kvPatientRepository) Remove(ctx context.Context, id string) (bool, error) {
	return r.store.Remove(ctx, id)
}

func (r *kvPatientRepository) FindByID(ctx context.Context, id string) *models.Patient {
	return r.store.FindByID(ctx, id)
}

// FindByIdentifier resolves a login identifier: an exact CPF match or a
// case-insensitive substring of the full name. The first match wins.
func (r *kvPatientRepository) FindByIdentifier(ctx context.Context, identifier string) *models.Patient {
	lower := strings.ToLower(identifier)
	for _, patient := range r.store.List(ctx) {
		if patient.CPF == identifier || strings.Contains(strings.ToLower(patient.FullName), lower) {
			match := patient
			return &match
		}
	}
	return nil
}

// Search matches the query case-insensitively against the name fields and as a raw
// substring against the CPF. Results keep list order.
func (r *kvPatientRepository) Search(ctx context.Context, query string) []models.Patient {
	lower := strings.ToLower(query)
	matches := make([]models.Patient, 0)
	for _, patient := range r.store.List(ctx) {
		if strings.Contains(strings.ToLower(patient.FullName), lower) ||
			strings.Contains(patient.CPF, query) ||
			strings.Contains(strings.ToLower(patient.FatherName), lower) ||
			strings.Contains(strings.ToLower(patient.MotherName), lower) {
			matches = append(matches, patient)
		}
	}
	return matches
}

func (r *kvPatientRepository) Replace(ctx context.Context, patients []models.Patient) error {
	return r.store.Replace(ctx, patients)
}
