package models

// Progress ratings accepted on a therapy session log.
const (
	ProgressExcellent        = "excellent"
	ProgressGood             = "good"
	ProgressRegular          = "regular"
	ProgressNeedsImprovement = "needs_improvement"
)

// MedicalReport is a clinical document attached to a patient.
type MedicalReport struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	FileURL     string `json:"fileUrl,omitempty"`
}

// Vaccine is one entry of a patient's vaccination record.
type Vaccine struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	Batch      string `json:"batch,omitempty"`
	Healthcare string `json:"healthcare,omitempty"`
}

// Activity is a therapeutic exercise assigned to a patient.
type Activity struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Completed   bool    `json:"completed"`
	Score       float64 `json:"score,omitempty"`
}

// Photo documents a patient's progress with an image.
type Photo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	URL         string `json:"url"`
}

// SessionLog records one attended therapy session. Duration is in minutes.
type SessionLog struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Duration     int      `json:"duration"`
	Description  string   `json:"description"`
	Activities   []string `json:"activities"`
	Observations string   `json:"observations"`
	Progress     string   `json:"progress"`
}

// NextVisit is the scheduled date and time of the next appointment.
type NextVisit struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Patient model. The same struct serves the key-value collection (JSON tags) and the
// hosted Postgres path (gorm tags, clinical sub-records serialized into JSON columns).
type Patient struct {
	ID         string `gorm:"primaryKey;size:64;column:id" json:"id"`
	FullName   string `gorm:"column:full_name;not null;index" json:"fullName"`
	BirthDate  string `gorm:"size:10;column:birth_date" json:"birthDate"`
	Age        int    `gorm:"column:age" json:"age"`
	CPF        string `gorm:"size:14;column:cpf;index" json:"cpf"`
	FatherName string `gorm:"column:father_name" json:"fatherName"`
	MotherName string `gorm:"column:mother_name" json:"motherName"`
	Phone1     string `gorm:"size:20;column:phone1" json:"phone1"`
	Phone2     string `gorm:"size:20;column:phone2" json:"phone2,omitempty"`
	CreatedAt  string `gorm:"size:32;column:created_at" json:"createdAt"`
	UpdatedAt  string `gorm:"size:32;column:updated_at" json:"updatedAt"`

	NextVisit      *NextVisit      `gorm:"serializer:json;column:next_visit" json:"nextVisit,omitempty"`
	MedicalReports []MedicalReport `gorm:"serializer:json;column:medical_reports" json:"medicalReports,omitempty"`
	Vaccines       []Vaccine       `gorm:"serializer:json;column:vaccines" json:"vaccines,omitempty"`
	Activities     []Activity      `gorm:"serializer:json;column:activities" json:"activities,omitempty"`
	Photos         []Photo         `gorm:"serializer:json;column:photos" json:"photos,omitempty"`
	Sessions       []SessionLog    `gorm:"serializer:json;column:sessions" json:"sessions,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) RecordID() string {
	return p.ID
}

func (p *Patient) Stamp(id, now string) {
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
}
