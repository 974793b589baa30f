package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IrisCare/config"
	"IrisCare/models"
	"IrisCare/repositories"
	"IrisCare/storage"
)

func newAuthFixture(t *testing.T) (*AuthService, storage.KV, repositories.PatientRepository, repositories.ProfessionalRepository) {
	t.Helper()
	kv, err := storage.NewFileStore(t.TempDir() + "/store.json")
	require.NoError(t, err)

	patients := repositories.NewPatientRepository(kv)
	professionals := repositories.NewProfessionalRepository(kv)
	cfg := &config.AppConfig{
		AdminUsername: "irisaves",
		AdminPassword: "iris123Aa",
		SessionKey:    []byte("iriscare.default.session.key.32b"),
		SessionTTL:    config.DefaultSessionTTL,
	}
	return NewAuthService(kv, patients, professionals, cfg), kv, patients, professionals
}

func TestLoginAdmin(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	ok, err := auth.Login(ctx, "irisaves", models.UserTypeAdmin, "iris123Aa")
	require.NoError(t, err)
	assert.True(t, ok)

	user := auth.CurrentUser(ctx)
	require.NotNil(t, user)
	assert.Equal(t, "admin-001", user.ID)
	assert.Equal(t, "Administrador", user.FullName)
	assert.Equal(t, models.UserTypeAdmin, user.Type)

	ok, err = auth.Login(ctx, "irisaves", models.UserTypeAdmin, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginPatientByCPFOrName(t *testing.T) {
	auth, _, patients, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := patients.Create(ctx, &models.Patient{
		FullName: "Maria Silva Santos",
		CPF:      "529.982.247-25",
	})
	require.NoError(t, err)

	ok, err := auth.Login(ctx, "529.982.247-25", models.UserTypePatient, "")
	require.NoError(t, err)
	assert.True(t, ok)

	auth.Logout(ctx)

	// Patients may also log in by a case-insensitive name fragment.
	ok, err = auth.Login(ctx, "maria silva", models.UserTypePatient, "")
	require.NoError(t, err)
	assert.True(t, ok)

	user := auth.CurrentUser(ctx)
	require.NotNil(t, user)
	assert.Equal(t, models.UserTypePatient, user.Type)
	assert.NotEmpty(t, user.SessionID, "session token is minted on login")

	auth.Logout(ctx)
	ok, err = auth.Login(ctx, "nobody", models.UserTypePatient, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginProfessional(t *testing.T) {
	auth, _, _, professionals := newAuthFixture(t)
	ctx := context.Background()

	created, err := professionals.Create(ctx, &models.Professional{
		FullName: "Dr. Carlos Oliveira",
		CPF:      "111.444.777-35",
		Password: "secret1",
	})
	require.NoError(t, err)

	// Not yet approved.
	ok, err := auth.Login(ctx, "111.444.777-35", models.UserTypeProfessional, "secret1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = professionals.Update(ctx, created.ID, map[string]interface{}{"approved": true})
	require.NoError(t, err)

	// A blank password never matches, even if an account stored one.
	ok, err = auth.Login(ctx, "111.444.777-35", models.UserTypeProfessional, "")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = auth.Login(ctx, "111.444.777-35", models.UserTypeProfessional, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	user := auth.CurrentUser(ctx)
	require.NotNil(t, user)
	assert.Equal(t, models.UserTypeProfessional, user.Type)
	assert.True(t, user.Approved)
}

func TestSessionExpiry(t *testing.T) {
	auth, kv, patients, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := patients.Create(ctx, &models.Patient{FullName: "Maria", CPF: "529.982.247-25"})
	require.NoError(t, err)

	loginTime := time.Now()
	auth.now = func() time.Time { return loginTime }

	ok, err := auth.Login(ctx, "529.982.247-25", models.UserTypePatient, "")
	require.NoError(t, err)
	require.True(t, ok)

	auth.now = func() time.Time { return loginTime.Add(23*time.Hour + 59*time.Minute) }
	assert.True(t, auth.HasValidSession(ctx), "still inside the 24h window")

	auth.now = func() time.Time { return loginTime.Add(24*time.Hour + time.Minute) }
	assert.False(t, auth.HasValidSession(ctx))
	assert.Nil(t, auth.CurrentUser(ctx))

	// The expiry check clears the persisted markers as a side effect.
	saved, err := kv.Get(ctx, storage.KeyCurrentUser)
	require.NoError(t, err)
	assert.Empty(t, saved)
	stamp, err := kv.Get(ctx, storage.KeySessionTimestamp)
	require.NoError(t, err)
	assert.Empty(t, stamp)
}

func TestAdminSessionNeverExpires(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	loginTime := time.Now()
	auth.now = func() time.Time { return loginTime }

	ok, err := auth.Login(ctx, "irisaves", models.UserTypeAdmin, "iris123Aa")
	require.NoError(t, err)
	require.True(t, ok)

	auth.now = func() time.Time { return loginTime.Add(48 * time.Hour) }
	assert.True(t, auth.HasValidSession(ctx))
	require.NotNil(t, auth.CurrentUser(ctx))
}

func TestLogoutClearsSession(t *testing.T) {
	auth, kv, _, _ := newAuthFixture(t)
	ctx := context.Background()

	ok, err := auth.Login(ctx, "irisaves", models.UserTypeAdmin, "iris123Aa")
	require.NoError(t, err)
	require.True(t, ok)

	auth.Logout(ctx)
	assert.False(t, auth.HasValidSession(ctx))
	assert.Nil(t, auth.CurrentUser(ctx))

	flag, err := kv.Get(ctx, storage.KeyAdminSession)
	require.NoError(t, err)
	assert.Empty(t, flag)

	// Logging out twice is harmless.
	auth.Logout(ctx)
}

func TestSessionCorruptTimestamp(t *testing.T) {
	auth, kv, _, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, storage.KeyCurrentUser, `{"id":"x"}`))
	require.NoError(t, kv.Set(ctx, storage.KeySessionTimestamp, "not-a-number"))

	assert.False(t, auth.HasValidSession(ctx))
	saved, err := kv.Get(ctx, storage.KeyCurrentUser)
	require.NoError(t, err)
	assert.Empty(t, saved, "a corrupt timestamp invalidates the whole session")
}
