package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IrisCare/models"
	"IrisCare/repositories"
	"IrisCare/storage"
)

func newExportFixture(t *testing.T) (*ExportService, *ImportService, repositories.PatientRepository, repositories.ProfessionalRepository, storage.KV) {
	t.Helper()
	kv, err := storage.NewFileStore(t.TempDir() + "/store.json")
	require.NoError(t, err)

	patients := repositories.NewPatientRepository(kv)
	professionals := repositories.NewProfessionalRepository(kv)
	return NewExportService(kv, patients, professionals),
		NewImportService(patients, professionals),
		patients, professionals, kv
}

func TestExportPatientsCSV(t *testing.T) {
	exports, _, patients, _, _ := newExportFixture(t)
	ctx := context.Background()

	_, err := patients.Create(ctx, &models.Patient{
		FullName: "Maria Silva Santos",
		CPF:      "529.982.247-25",
		Age:      40,
	})
	require.NoError(t, err)

	filename, content := exports.ExportPatientsCSV(ctx)
	assert.True(t, strings.HasPrefix(filename, "patients_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	lines := strings.Split(content, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,fullName,birthDate,age,cpf,fatherName,motherName,phone1,phone2,createdAt,updatedAt", lines[0])
	assert.Contains(t, lines[1], `"Maria Silva Santos"`)
	assert.Contains(t, lines[1], ",40,")
}

func TestExportEmptyCollection(t *testing.T) {
	exports, _, _, _, _ := newExportFixture(t)

	_, content := exports.ExportPatientsCSV(context.Background())
	assert.Equal(t, "", content)
}

func TestPatientCSVRoundTrip(t *testing.T) {
	exports, imports, patients, _, _ := newExportFixture(t)
	ctx := context.Background()

	created, err := patients.Create(ctx, &models.Patient{
		FullName:  "Maria Silva Santos",
		BirthDate: "1985-03-15",
		Age:       40,
		CPF:       "529.982.247-25",
		Phone1:    "(11) 99999-9999",
	})
	require.NoError(t, err)

	_, content := exports.ExportPatientsCSV(ctx)
	require.NoError(t, patients.Replace(ctx, []models.Patient{}))

	count, err := imports.ImportPatientsCSV(ctx, content)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	restored := patients.List(ctx)
	require.Len(t, restored, 1)
	assert.Equal(t, created.ID, restored[0].ID)
	assert.Equal(t, "Maria Silva Santos", restored[0].FullName)
	assert.Equal(t, 40, restored[0].Age)
	assert.Equal(t, created.CreatedAt, restored[0].CreatedAt)
}

func TestProfessionalCSVRoundTripKeepsApproval(t *testing.T) {
	exports, imports, _, professionals, _ := newExportFixture(t)
	ctx := context.Background()

	created, err := professionals.Create(ctx, &models.Professional{
		FullName: "Dr. Carlos Oliveira",
		CPF:      "111.444.777-35",
		Course:   "Neuropsicopedagogia",
	})
	require.NoError(t, err)
	_, err = professionals.Update(ctx, created.ID, map[string]interface{}{"approved": true})
	require.NoError(t, err)

	_, content := exports.ExportProfessionalsCSV(ctx)
	require.NoError(t, professionals.Replace(ctx, []models.Professional{}))

	count, err := imports.ImportProfessionalsCSV(ctx, content)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	restored := professionals.List(ctx)
	require.Len(t, restored, 1)
	// Import bypasses the registration gate, so the exported flag survives.
	assert.True(t, restored[0].Approved)
}

func TestImportSkipsInvalidRows(t *testing.T) {
	_, imports, patients, _, _ := newExportFixture(t)
	ctx := context.Background()

	csv := "fullName,cpf\n\"Maria\",\"529.982.247-25\"\n\"\",\"111.444.777-35\"\n"
	count, err := imports.ImportPatientsCSV(ctx, csv)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	listed := patients.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, "Maria", listed[0].FullName)
	assert.NotEmpty(t, listed[0].ID, "rows without an id get a generated one")
	assert.NotEmpty(t, listed[0].CreatedAt)
}

func TestImportAllRowsInvalid(t *testing.T) {
	_, imports, _, _, _ := newExportFixture(t)

	csv := "fullName,cpf\n\"\",\"\"\n"
	_, err := imports.ImportPatientsCSV(context.Background(), csv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid records")
}

func TestJSONBackupRoundTrip(t *testing.T) {
	exports, _, patients, professionals, _ := newExportFixture(t)
	ctx := context.Background()

	_, err := patients.Create(ctx, &models.Patient{FullName: "Maria", CPF: "529.982.247-25"})
	require.NoError(t, err)
	_, err = professionals.Create(ctx, &models.Professional{FullName: "Carlos", CPF: "111.444.777-35"})
	require.NoError(t, err)

	backup, err := exports.ExportAllJSON(ctx)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(backup), &payload))
	assert.Contains(t, payload, "exportDate")

	require.NoError(t, exports.ClearAllData(ctx))
	assert.Empty(t, patients.List(ctx))

	require.NoError(t, exports.ImportAllJSON(ctx, backup))
	assert.Len(t, patients.List(ctx), 1)
	assert.Len(t, professionals.List(ctx), 1)
}

func TestImportAllJSONPartialPayload(t *testing.T) {
	exports, _, patients, professionals, _ := newExportFixture(t)
	ctx := context.Background()

	_, err := professionals.Create(ctx, &models.Professional{FullName: "Carlos", CPF: "111.444.777-35"})
	require.NoError(t, err)

	// A backup holding only patients must not disturb professionals.
	require.NoError(t, exports.ImportAllJSON(ctx, `{"patients":[{"id":"p1","fullName":"Maria"}]}`))
	assert.Len(t, patients.List(ctx), 1)
	assert.Len(t, professionals.List(ctx), 1)
}

func TestClearAllDataWipesSessions(t *testing.T) {
	exports, _, _, _, kv := newExportFixture(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, storage.KeyAdminSession, "true"))
	require.NoError(t, exports.ClearAllData(ctx))

	flag, err := kv.Get(ctx, storage.KeyAdminSession)
	require.NoError(t, err)
	assert.Empty(t, flag)
}
