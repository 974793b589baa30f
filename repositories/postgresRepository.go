package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"IrisCare/models"
	"IrisCare/storage"
	"IrisCare/utils"
)

// NewRepositories selects the storage path: the hosted Postgres backend when a
// database handle is present, the key-value record store otherwise.
func NewRepositories(kv storage.KV, db *gorm.DB) (PatientRepository, ProfessionalRepository, MessageRepository) {
	if db != nil {
		return &pgPatientRepository{db: db}, &pgProfessionalRepository{db: db}, &pgMessageRepository{db: db}
	}
	return NewPatientRepository(kv), NewProfessionalRepository(kv), NewMessageRepository(kv)
}

// pgPatientRepository maps the record store contract onto rows keyed by UUID.
type pgPatientRepository struct {
	db *gorm.DB
}

func (r *pgPatientRepository) List(ctx context.Context) []models.Patient {
	var patients []models.Patient
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&patients).Error; err != nil {
		log.Printf("Failed to list patients: %v", err)
		return []models.Patient{}
	}
	return patients
}

func (r *pgPatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	patient.Stamp(uuid.NewString(), utils.NowISO())
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(patient).Error; err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		return upsertProfile(tx, profileForPatient(patient))
	})
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (r *pgPatientRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load patient: %w", err)
	}
	merged, err := mergeRecord(&patient, patch)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(merged).Error; err != nil {
			return fmt.Errorf("failed to update patient: %w", err)
		}
		return upsertProfile(tx, profileForPatient(merged))
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (r *pgPatientRepository) Remove(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Patient{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete patient: %w", result.Error)
		}
		removed = result.RowsAffected > 0
		if !removed {
			return nil
		}
		return tx.Delete(&models.Profile{}, "id = ?", id).Error
	})
	return removed, err
}

func (r *pgPatientRepository) FindByID(ctx context.Context, id string) *models.Patient {
	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to get patient: %v", err)
		}
		return nil
	}
	return &patient
}

func (r *pgPatientRepository) FindByIdentifier(ctx context.Context, identifier string) *models.Patient {
	lower := strings.ToLower(identifier)
	for _, patient := range r.List(ctx) {
		if patient.CPF == identifier || strings.Contains(strings.ToLower(patient.FullName), lower) {
			match := patient
			return &match
		}
	}
	return nil
}

func (r *pgPatientRepository) Search(ctx context.Context, query string) []models.Patient {
	lower := strings.ToLower(query)
	matches := make([]models.Patient, 0)
	for _, patient := range r.List(ctx) {
		if strings.Contains(strings.ToLower(patient.FullName), lower) ||
			strings.Contains(patient.CPF, query) ||
			strings.Contains(strings.ToLower(patient.FatherName), lower) ||
			strings.Contains(strings.ToLower(patient.MotherName), lower) {
			matches = append(matches, patient)
		}
	}
	return matches
}

func (r *pgPatientRepository) Replace(ctx context.Context, patients []models.Patient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Patient{}).Error; err != nil {
			return fmt.Errorf("failed to clear patients: %w", err)
		}
		for i := range patients {
			if err := tx.Create(&patients[i]).Error; err != nil {
				return fmt.Errorf("failed to insert patient: %w", err)
			}
			if err := upsertProfile(tx, profileForPatient(&patients[i])); err != nil {
				return err
			}
		}
		return nil
	})
}

// pgProfessionalRepository applies the approval gate server-side.
type pgProfessionalRepository struct {
	db *gorm.DB
}

func (r *pgProfessionalRepository) List(ctx context.Context) []models.Professional {
	var professionals []models.Professional
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&professionals).Error; err != nil {
		log.Printf("Failed to list professionals: %v", err)
		return []models.Professional{}
	}
	return professionals
}

func (r *pgProfessionalRepository) Create(ctx context.Context, professional *models.Professional) (*models.Professional, error) {
	professional.Approved = false
	professional.Stamp(uuid.NewString(), utils.NowISO())
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(professional).Error; err != nil {
			return fmt.Errorf("failed to create professional: %w", err)
		}
		return upsertProfile(tx, profileForProfessional(professional))
	})
	if err != nil {
		return nil, err
	}
	return professional, nil
}

func (r *pgProfessionalRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Professional, error) {
	var professional models.Professional
	if err := r.db.WithContext(ctx).First(&professional, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load professional: %w", err)
	}
	merged, err := mergeRecord(&professional, patch)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(merged).Error; err != nil {
			return fmt.Errorf("failed to update professional: %w", err)
		}
		return upsertProfile(tx, profileForProfessional(merged))
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (r *pgProfessionalRepository) Remove(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Professional{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete professional: %w", result.Error)
		}
		removed = result.RowsAffected > 0
		if !removed {
			return nil
		}
		return tx.Delete(&models.Profile{}, "id = ?", id).Error
	})
	return removed, err
}

func (r *pgProfessionalRepository) FindByID(ctx context.Context, id string) *models.Professional {
	var professional models.Professional
	if err := r.db.WithContext(ctx).First(&professional, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to get professional: %v", err)
		}
		return nil
	}
	return &professional
}

func (r *pgProfessionalRepository) FindByCredentials(ctx context.Context, cpf, password string) *models.Professional {
	var professional models.Professional
	err := r.db.WithContext(ctx).
		First(&professional, "cpf = ? AND password = ? AND approved = ?", cpf, password, true).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to check professional credentials: %v", err)
		}
		return nil
	}
	return &professional
}

func (r *pgProfessionalRepository) Pending(ctx context.Context) []models.Professional {
	var pending []models.Professional
	if err := r.db.WithContext(ctx).Where("approved = ?", false).Order("created_at ASC").Find(&pending).Error; err != nil {
		log.Printf("Failed to list pending professionals: %v", err)
		return []models.Professional{}
	}
	return pending
}

func (r *pgProfessionalRepository) Approved(ctx context.Context) []models.Professional {
	var approved []models.Professional
	if err := r.db.WithContext(ctx).Where("approved = ?", true).Order("created_at ASC").Find(&approved).Error; err != nil {
		log.Printf("Failed to list approved professionals: %v", err)
		return []models.Professional{}
	}
	return approved
}

func (r *pgProfessionalRepository) Replace(ctx context.Context, professionals []models.Professional) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Professional{}).Error; err != nil {
			return fmt.Errorf("failed to clear professionals: %w", err)
		}
		for i := range professionals {
			if err := tx.Create(&professionals[i]).Error; err != nil {
				return fmt.Errorf("failed to insert professional: %w", err)
			}
			if err := upsertProfile(tx, profileForProfessional(&professionals[i])); err != nil {
				return err
			}
		}
		return nil
	})
}

type pgMessageRepository struct {
	db *gorm.DB
}

func (r *pgMessageRepository) ListByPatient(ctx context.Context, patientID string) []models.Message {
	var thread []models.Message
	if err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).Order("sent_at ASC").Find(&thread).Error; err != nil {
		log.Printf("Failed to list messages: %v", err)
		return []models.Message{}
	}
	return thread
}

func (r *pgMessageRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	message.Stamp(uuid.NewString(), utils.NowISO())
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

func upsertProfile(tx *gorm.DB, profile models.Profile) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func profileForPatient(p *models.Patient) models.Profile {
	return models.Profile{
		ID:        p.ID,
		FullName:  p.FullName,
		CPF:       p.CPF,
		BirthDate: p.BirthDate,
		Phone:     p.Phone1,
		UserType:  models.UserTypePatient,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func profileForProfessional(p *models.Professional) models.Profile {
	return models.Profile{
		ID:        p.ID,
		FullName:  p.FullName,
		CPF:       p.CPF,
		BirthDate: p.BirthDate,
		Phone:     p.Phone,
		UserType:  models.UserTypeProfessional,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
