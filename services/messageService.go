package services

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"IrisCare/models"
	"IrisCare/repositories"
)

// MessageService handles the chat thread attached to each patient.
type MessageService struct {
	repository repositories.MessageRepository
}

func NewMessageService(repository repositories.MessageRepository) *MessageService {
	return &MessageService{repository: repository}
}

// Thread returns the patient's messages in send order.
func (s *MessageService) Thread(ctx context.Context, patientID string) []models.Message {
	return s.repository.ListByPatient(ctx, patientID)
}

// Send stores a new message from the given sender. Blank bodies are rejected.
func (s *MessageService) Send(ctx context.Context, patientID string, sender models.SessionUser, body, imageURL string) (*models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, validation.Errors{"message": errors.New("cannot be blank")}
	}
	message := &models.Message{
		PatientID:  patientID,
		SenderID:   sender.ID,
		SenderName: sender.FullName,
		Body:       body,
		ImageURL:   imageURL,
	}
	return s.repository.Create(ctx, message)
}
