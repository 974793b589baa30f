package models

// Professional model. A practitioner awaiting or holding system access. Passwords
// are stored and compared verbatim; the approved flag gates authentication.
type Professional struct {
	ID          string   `gorm:"primaryKey;size:64;column:id" json:"id"`
	FullName    string   `gorm:"column:full_name;not null;index" json:"fullName"`
	CPF         string   `gorm:"size:14;column:cpf;index" json:"cpf"`
	BirthDate   string   `gorm:"size:10;column:birth_date" json:"birthDate"`
	Course      string   `gorm:"column:course" json:"course"`
	Phone       string   `gorm:"size:20;column:phone" json:"phone"`
	Password    string   `gorm:"column:password" json:"password"`
	Approved    bool     `gorm:"column:approved;not null" json:"approved"`
	CreatedAt   string   `gorm:"size:32;column:created_at" json:"createdAt"`
	UpdatedAt   string   `gorm:"size:32;column:updated_at" json:"updatedAt"`
	Specialties []string `gorm:"serializer:json;column:specialties" json:"specialties,omitempty"`
	PatientIDs  []string `gorm:"serializer:json;column:patient_ids" json:"patients,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}

func (p *Professional) RecordID() string {
	return p.ID
}

func (p *Professional) Stamp(id, now string) {
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
}
