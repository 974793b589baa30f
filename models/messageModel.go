package models

// Message is one chat entry in a patient's thread. SenderName is denormalized at
// send time so threads render without a second lookup.
type Message struct {
	ID         string `gorm:"primaryKey;size:64;column:id" json:"id"`
	PatientID  string `gorm:"size:64;column:patient_id;not null;index" json:"patientId"`
	SenderID   string `gorm:"size:64;column:sender_id;not null;index" json:"senderId"`
	SenderName string `gorm:"column:sender_name" json:"senderName"`
	Body       string `gorm:"type:text;column:message;not null" json:"message"`
	ImageURL   string `gorm:"type:text;column:image_url" json:"imageUrl,omitempty"`
	SentAt     string `gorm:"size:32;column:sent_at" json:"sentAt"`
}

func (Message) TableName() string {
	return "messages"
}

func (m *Message) RecordID() string {
	return m.ID
}

func (m *Message) Stamp(id, now string) {
	m.ID = id
	m.SentAt = now
}

// Profile mirrors the hosted backend's profiles table. Rows are maintained
// alongside patients and professionals on the Postgres path only.
type Profile struct {
	ID        string `gorm:"primaryKey;size:64;column:id" json:"id"`
	FullName  string `gorm:"column:full_name;not null" json:"fullName"`
	CPF       string `gorm:"size:14;column:cpf;not null" json:"cpf"`
	BirthDate string `gorm:"size:10;column:birth_date" json:"birthDate"`
	Phone     string `gorm:"size:20;column:phone" json:"phone"`
	UserType  string `gorm:"size:20;column:user_type;not null" json:"userType"`
	CreatedAt string `gorm:"size:32;column:created_at" json:"createdAt"`
	UpdatedAt string `gorm:"size:32;column:updated_at" json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}
