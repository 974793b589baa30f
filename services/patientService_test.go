package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IrisCare/models"
	"IrisCare/repositories"
	"IrisCare/storage"
	"IrisCare/utils"
)

func newPatientServiceFixture(t *testing.T) *PatientService {
	t.Helper()
	kv, err := storage.NewFileStore(t.TempDir() + "/store.json")
	require.NoError(t, err)
	return NewPatientService(repositories.NewPatientRepository(kv))
}

func validPatient() *models.Patient {
	return &models.Patient{
		FullName:   "Maria Silva Santos",
		BirthDate:  "1985-03-15",
		CPF:        "529.982.247-25",
		FatherName: "João Santos",
		MotherName: "Ana Silva",
		Phone1:     "(11) 99999-9999",
	}
}

func TestPatientServiceCreateComputesAge(t *testing.T) {
	service := newPatientServiceFixture(t)
	ctx := context.Background()

	patient := validPatient()
	patient.Age = 999 // submitted age is overwritten
	created, err := service.Create(ctx, patient)
	require.NoError(t, err)
	assert.Equal(t, utils.CalculateAge("1985-03-15"), created.Age)
}

func TestPatientServiceCreateRejectsInvalid(t *testing.T) {
	service := newPatientServiceFixture(t)

	patient := validPatient()
	patient.CPF = "111.111.111-11"
	_, err := service.Create(context.Background(), patient)
	assert.Error(t, err)
	assert.Empty(t, service.GetAll(context.Background()))
}

func TestActivityLifecycle(t *testing.T) {
	service := newPatientServiceFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validPatient())
	require.NoError(t, err)

	updated, err := service.AddActivity(ctx, created.ID, models.Activity{
		Title:     "Memory cards",
		Completed: true, // new activities always start open
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Len(t, updated.Activities, 1)
	assert.NotEmpty(t, updated.Activities[0].ID)
	assert.False(t, updated.Activities[0].Completed)

	completed, err := service.CompleteActivity(ctx, created.ID, updated.Activities[0].ID)
	require.NoError(t, err)
	require.NotNil(t, completed)
	assert.True(t, completed.Activities[0].Completed)

	missing, err := service.CompleteActivity(ctx, created.ID, "unknown-activity")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAddSessionLogChecksProgress(t *testing.T) {
	service := newPatientServiceFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validPatient())
	require.NoError(t, err)

	_, err = service.AddSessionLog(ctx, created.ID, models.SessionLog{
		Date:     "2026-08-28",
		Progress: "amazing",
	})
	assert.Error(t, err)

	updated, err := service.AddSessionLog(ctx, created.ID, models.SessionLog{
		Date:     "2026-08-28",
		Progress: models.ProgressGood,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Len(t, updated.Sessions, 1)
	assert.Equal(t, models.ProgressGood, updated.Sessions[0].Progress)
}

func TestScheduleNextVisit(t *testing.T) {
	service := newPatientServiceFixture(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validPatient())
	require.NoError(t, err)

	updated, err := service.ScheduleNextVisit(ctx, created.ID, models.NextVisit{Date: "2026-09-01", Time: "14:30"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.NextVisit)
	assert.Equal(t, "2026-09-01", updated.NextVisit.Date)

	// Scheduling again replaces the previous visit.
	updated, err = service.ScheduleNextVisit(ctx, created.ID, models.NextVisit{Date: "2026-09-08", Time: "10:00"})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-08", updated.NextVisit.Date)

	missing, err := service.ScheduleNextVisit(ctx, "nobody", models.NextVisit{Date: "2026-09-01"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSubRecordsUnknownPatient(t *testing.T) {
	service := newPatientServiceFixture(t)
	ctx := context.Background()

	patient, err := service.AddVaccine(ctx, "missing", models.Vaccine{Name: "BCG"})
	require.NoError(t, err)
	assert.Nil(t, patient)
}
