package services

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/o1egl/paseto"

	"IrisCare/config"
	"IrisCare/models"
	"IrisCare/repositories"
	"IrisCare/storage"
)

// sessionClaims is the payload minted into the session token. The token only has
// to exist and look like a token; no authorization decision ever reads it back.
type sessionClaims struct {
	UserID   string    `json:"userId"`
	UserType string    `json:"userType"`
	IssuedAt time.Time `json:"issuedAt"`
}

// AuthService tracks the single authenticated identity of this client. Session
// state lives in the key-value store, so a restart inside the TTL window keeps
// the session. There is at most one session slot.
type AuthService struct {
	kv            storage.KV
	patients      repositories.PatientRepository
	professionals repositories.ProfessionalRepository
	cfg           *config.AppConfig
	now           func() time.Time
}

func NewAuthService(
	kv storage.KV,
	patients repositories.PatientRepository,
	professionals repositories.ProfessionalRepository,
	cfg *config.AppConfig,
) *AuthService {
	return &AuthService{
		kv:            kv,
		patients:      patients,
		professionals: professionals,
		cfg:           cfg,
		now:           time.Now,
	}
}

// Login authenticates identifier under the given user type and stores the session
// snapshot. A false return does not distinguish unknown identifiers from bad
// passwords.
//
// Admin logins compare the submitted pair verbatim against the configured
// credentials. Patients log in by exact CPF or case-insensitive name substring,
// no password. Professionals need CPF, password and an approved account, all at
// once.
func (s *AuthService) Login(ctx context.Context, identifier, userType, password string) (bool, error) {
	switch userType {
	case models.UserTypeAdmin:
		if identifier != s.cfg.AdminUsername || password != s.cfg.AdminPassword {
			return false, nil
		}
		admin := models.SessionUser{
			ID:       "admin-001",
			FullName: "Administrador",
			CPF:      "000.000.000-00",
			Type:     models.UserTypeAdmin,
		}
		return true, s.openSession(ctx, admin, true)

	case models.UserTypePatient:
		patient := s.patients.FindByIdentifier(ctx, identifier)
		if patient == nil {
			return false, nil
		}
		user := models.SessionUser{
			ID:         patient.ID,
			FullName:   patient.FullName,
			CPF:        patient.CPF,
			Type:       models.UserTypePatient,
			BirthDate:  patient.BirthDate,
			Age:        patient.Age,
			Phone1:     patient.Phone1,
			Phone2:     patient.Phone2,
			FatherName: patient.FatherName,
			MotherName: patient.MotherName,
		}
		return true, s.openSession(ctx, user, false)

	case models.UserTypeProfessional:
		if password == "" {
			return false, nil
		}
		professional := s.professionals.FindByCredentials(ctx, identifier, password)
		if professional == nil {
			return false, nil
		}
		user := models.SessionUser{
			ID:       professional.ID,
			FullName: professional.FullName,
			CPF:      professional.CPF,
			Type:     models.UserTypeProfessional,
			Course:   professional.Course,
			Phone1:   professional.Phone,
			Approved: professional.Approved,
		}
		return true, s.openSession(ctx, user, false)
	}
	return false, nil
}

// Logout clears the in-memory identity and every persisted session marker,
// whether or not a session existed.
func (s *AuthService) Logout(ctx context.Context) {
	s.clearSession(ctx)
}

// HasValidSession reports whether a session exists and is still inside the TTL.
// Admin sessions do not expire. An expired session clears its own markers as a
// side effect of the check; there is no background timer.
func (s *AuthService) HasValidSession(ctx context.Context) bool {
	adminFlag, _ := s.kv.Get(ctx, storage.KeyAdminSession)
	if adminFlag == "true" {
		return true
	}

	savedUser, _ := s.kv.Get(ctx, storage.KeyCurrentUser)
	stamp, _ := s.kv.Get(ctx, storage.KeySessionTimestamp)
	if savedUser == "" || stamp == "" {
		return false
	}

	loginMillis, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil {
		s.clearSession(ctx)
		return false
	}
	if s.now().UnixMilli()-loginMillis < s.sessionTTL().Milliseconds() {
		return true
	}
	s.clearSession(ctx)
	return false
}

// CurrentUser returns the stored identity snapshot, or nil when no valid session
// exists.
func (s *AuthService) CurrentUser(ctx context.Context) *models.SessionUser {
	if !s.HasValidSession(ctx) {
		return nil
	}
	raw, _ := s.kv.Get(ctx, storage.KeyCurrentUser)
	if raw == "" {
		return nil
	}
	var user models.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("Failed to parse session user: %v", err)
		s.clearSession(ctx)
		return nil
	}
	return &user
}

func (s *AuthService) openSession(ctx context.Context, user models.SessionUser, admin bool) error {
	token, err := s.mintToken(user)
	if err != nil {
		// The token is shape-only; a minting failure must not sink the login.
		log.Printf("Failed to mint session token: %v", err)
	} else {
		user.SessionID = token
	}

	blob, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, storage.KeyCurrentUser, string(blob)); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, storage.KeySessionTimestamp, strconv.FormatInt(s.now().UnixMilli(), 10)); err != nil {
		return err
	}
	if admin {
		return s.kv.Set(ctx, storage.KeyAdminSession, "true")
	}
	return nil
}

func (s *AuthService) mintToken(user models.SessionUser) (string, error) {
	claims := sessionClaims{UserID: user.ID, UserType: user.Type, IssuedAt: s.now()}
	return paseto.NewV2().Encrypt(s.cfg.SessionKey, claims, nil)
}

func (s *AuthService) clearSession(ctx context.Context) {
	for _, key := range []string{storage.KeyCurrentUser, storage.KeySessionTimestamp, storage.KeyAdminSession} {
		if err := s.kv.Delete(ctx, key); err != nil {
			log.Printf("Failed to clear session key %s: %v", key, err)
		}
	}
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.cfg.SessionTTL > 0 {
		return s.cfg.SessionTTL
	}
	return config.DefaultSessionTTL
}
