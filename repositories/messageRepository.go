package repositories

import (
	"context"

	"IrisCare/models"
	"IrisCare/storage"
)

// MessageRepository stores the chat threads attached to patients.
type MessageRepository interface {
	ListByPatient(ctx context.Context, patientID string) []models.Message
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
}

type kvMessageRepository struct {
	store *ListStore[models.Message, *models.Message]
}

// NewMessageRepository builds the key-value backed message store.
func NewMessageRepository(kv storage.KV) MessageRepository {
	return &kvMessageRepository{
		store: NewListStore[models.Message, *models.Message](kv, storage.KeyMessages),
	}
}

// ListByPatient returns the patient's thread in send order.
func (r *kvMessageRepository) ListByPatient(ctx context.Context, patientID string) []models.Message {
	thread := make([]models.Message, 0)
	for _, message := range r.store.List(ctx) {
		if message.PatientID == patientID {
			thread = append(thread, message)
		}
	}
	return thread
}

func (r *kvMessageRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	return r.store.Create(ctx, message)
}
