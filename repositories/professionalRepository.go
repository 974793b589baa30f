package repositories

import (
	"context"

	"IrisCare/models"
	"IrisCare/storage"
)

// ProfessionalRepository is the record store for professionals.
type ProfessionalRepository interface {
	List(ctx context.Context) []models.Professional
	Create(ctx context.Context, professional *models.Professional) (*models.Professional, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Professional, error)
	Remove(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) *models.Professional
	FindByCredentials(ctx context.Context, cpf, password string) *models.Professional
	Pending(ctx context.Context) []models.Professional
	Approved(ctx context.Context) []models.Professional
	Replace(ctx context.Context, professionals []models.Professional) error
}

type kvProfessionalRepository struct {
	store *ListStore[models.Professional, *models.Professional]
}

// NewProfessionalRepository builds the key-value backed professional store.
func NewProfessionalRepository(kv storage.KV) ProfessionalRepository {
	return &kvProfessionalRepository{
		store: NewListStore[models.Professional, *models.Professional](kv, storage.KeyProfessionals),
	}
}

func (r *kvProfessionalRepository) List(ctx context.Context) []models.Professional {
	return r.store.List(ctx)
}

// Create stores the professional with approval withheld. Every registration waits
// for an explicit administrator decision regardless of the submitted flag.
func (r *kvProfessionalRepository) Create(ctx context.Context, professional *models.Professional) (*models.Professional, error) {
	professional.Approved = false
	return r.store.Create(ctx, professional)
}

func (r *kvProfessionalRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Professional, error) {
	return r.store.Update(ctx, id, patch)
}

func (r *kvProfessionalRepository) Remove(ctx context.Context, id string) (bool, error) {
	return r.store.Remove(ctx, id)
}

func (r *kvProfessionalRepository) FindByID(ctx context.Context, id string) *models.Professional {
	return r.store.FindByID(ctx, id)
}

// FindByCredentials returns the professional matching cpf and password whose
// account has been approved. All three conditions must hold; a miss is a bare nil
// with no further detail.
func (r *kvProfessionalRepository) FindByCredentials(ctx context.Context, cpf, password string) *models.Professional {
	for _, professional := range r.store.List(ctx) {
		if professional.CPF == cpf && professional.Password == password && professional.Approved {
			match := professional
			return &match
		}
	}
	return nil
}

// Pending lists professionals still waiting for administrator approval.
func (r *kvProfessionalRepository) Pending(ctx context.Context) []models.Professional {
	pending := make([]models.Professional, 0)
	for _, professional := range r.store.List(ctx) {
		if !professional.Approved {
			pending = append(pending, professional)
		}
	}
	return pending
}

// Approved lists professionals holding system access.
func (r *kvProfessionalRepository) Approved(ctx context.Context) []models.Professional {
	approved := make([]models.Professional, 0)
	for _, professional := range r.store.List(ctx) {
		if professional.Approved {
			approved = append(approved, professional)
		}
	}
	return approved
}

func (r *kvProfessionalRepository) Replace(ctx context.Context, professionals []models.Professional) error {
	return r.store.Replace(ctx, professionals)
}
