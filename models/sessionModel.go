package models

// User types held by a session.
const (
	UserTypePatient      = "patient"
	UserTypeProfessional = "professional"
	UserTypeAdmin        = "admin"
)

// SessionUser is the identity snapshot captured at login. It is a copy of the
// underlying record, not a reference; later edits to the record do not reach the
// session until the next login.
type SessionUser struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	CPF        string `json:"cpf"`
	Type       string `json:"type"`
	BirthDate  string `json:"birthDate,omitempty"`
	Age        int    `json:"age,omitempty"`
	Phone1     string `json:"phone1,omitempty"`
	Phone2     string `json:"phone2,omitempty"`
	FatherName string `json:"fatherName,omitempty"`
	MotherName string `json:"motherName,omitempty"`
	Course     string `json:"course,omitempty"`
	Approved   bool   `json:"approved,omitempty"`
	SessionID  string `json:"sessionId,omitempty"`
}
