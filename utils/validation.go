package utils

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"IrisCare/models"
)

// Validation errors
var (
	ErrInvalidCPF   = errors.New("CPF is not valid")
	ErrInvalidPhone = errors.New("phone number must have 10 or 11 digits")
)

var nonDigits = regexp.MustCompile(`\D`)

// IsValidCPF reports whether value is a checksum-valid CPF. Formatting characters
// are stripped first; anything other than 11 digits fails, as do all-repeated-digit
// sequences that would otherwise pass the checksum math.
func IsValidCPF(value string) bool {
	cpf := nonDigits.ReplaceAllString(value, "")
	if len(cpf) != 11 {
		return false
	}
	if strings.Count(cpf, cpf[:1]) == 11 {
		return false
	}

	digits := make([]int, 11)
	for i := 0; i < 11; i++ {
		digits[i] = int(cpf[i] - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	if (sum*10)%11%10 != digits[9] {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	return (sum*10)%11%10 == digits[10]
}

// IsValidPhone reports whether value contains exactly 10 or 11 digits once
// formatting characters are stripped.
func IsValidPhone(value string) bool {
	phone := nonDigits.ReplaceAllString(value, "")
	return len(phone) == 10 || len(phone) == 11
}

func cpfRule(value interface{}) error {
	s, _ := value.(string)
	if !IsValidCPF(s) {
		return ErrInvalidCPF
	}
	return nil
}

func phoneRule(value interface{}) error {
	s, _ := value.(string)
	if !IsValidPhone(s) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidatePatient checks the registration fields of a patient. Failures come back
// as a field name to message mapping (validation.Errors), never as a panic.
func ValidatePatient(p models.Patient) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FullName, validation.Required, validation.Length(2, 0)),
		validation.Field(&p.BirthDate, validation.Required),
		validation.Field(&p.CPF, validation.Required, validation.By(cpfRule)),
		validation.Field(&p.FatherName, validation.Required, validation.Length(2, 0)),
		validation.Field(&p.MotherName, validation.Required, validation.Length(2, 0)),
		validation.Field(&p.Phone1, validation.Required, validation.By(phoneRule)),
		validation.Field(&p.Phone2, validation.When(p.Phone2 != "", validation.By(phoneRule))),
	)
}

// ValidateProfessional checks the registration fields of a professional.
func ValidateProfessional(p models.Professional) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FullName, validation.Required, validation.Length(2, 0)),
		validation.Field(&p.CPF, validation.Required, validation.By(cpfRule)),
		validation.Field(&p.BirthDate, validation.Required),
		validation.Field(&p.Course, validation.Required, validation.Length(5, 0)),
		validation.Field(&p.Phone, validation.Required, validation.By(phoneRule)),
		validation.Field(&p.Password, validation.Required, validation.Length(6, 0)),
	)
}

// ValidateImportRow applies the required-field schema for an imported CSV row.
// Imported rows only need a name and a tax ID; the remaining fields may be sparse
// in legacy exports.
func ValidateImportRow(row map[string]string) error {
	return validation.Errors{
		"fullName": validation.Validate(row["fullName"], validation.Required),
		"cpf":      validation.Validate(row["cpf"], validation.Required),
	}.Filter()
}
