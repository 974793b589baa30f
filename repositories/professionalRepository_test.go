package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IrisCare/models"
)

func newTestProfessional() *models.Professional {
	return &models.Professional{
		FullName:  "Dr. Carlos Oliveira",
		CPF:       "111.444.777-35",
		BirthDate: "1980-01-01",
		Course:    "Neuropsicopedagogia",
		Phone:     "(11) 98888-7777",
		Password:  "secret1",
	}
}

func TestProfessionalCreateWithholdsApproval(t *testing.T) {
	repo := NewProfessionalRepository(newTestKV(t))
	ctx := context.Background()

	professional := newTestProfessional()
	professional.Approved = true // submitted flag must be ignored
	created, err := repo.Create(ctx, professional)
	require.NoError(t, err)
	assert.False(t, created.Approved)

	assert.Len(t, repo.Pending(ctx), 1)
	assert.Empty(t, repo.Approved(ctx))
}

func TestProfessionalApprovalFilters(t *testing.T) {
	repo := NewProfessionalRepository(newTestKV(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestProfessional())
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, map[string]interface{}{"approved": true})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Approved)

	assert.Empty(t, repo.Pending(ctx))
	assert.Len(t, repo.Approved(ctx), 1)
}

func TestProfessionalFindByCredentials(t *testing.T) {
	repo := NewProfessionalRepository(newTestKV(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestProfessional())
	require.NoError(t, err)

	// Unapproved accounts cannot log in even with correct credentials.
	assert.Nil(t, repo.FindByCredentials(ctx, "111.444.777-35", "secret1"))

	_, err = repo.Update(ctx, created.ID, map[string]interface{}{"approved": true})
	require.NoError(t, err)

	assert.NotNil(t, repo.FindByCredentials(ctx, "111.444.777-35", "secret1"))
	assert.Nil(t, repo.FindByCredentials(ctx, "111.444.777-35", "wrong"))
	assert.Nil(t, repo.FindByCredentials(ctx, "000.000.000-00", "secret1"))
}

func TestProfessionalRemove(t *testing.T) {
	repo := NewProfessionalRepository(newTestKV(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestProfessional())
	require.NoError(t, err)

	removed, err := repo.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}
