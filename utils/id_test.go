package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestNowISO(t *testing.T) {
	now := NowISO()
	parsed, err := time.Parse("2006-01-02T15:04:05.000Z", now)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
}

func TestCalculateAge(t *testing.T) {
	eighteenYearsAgo := time.Now().AddDate(-18, 0, 0).Format("2006-01-02")
	assert.Equal(t, 18, CalculateAge(eighteenYearsAgo))

	almostEighteen := time.Now().AddDate(-18, 0, 1).Format("2006-01-02")
	assert.Equal(t, 17, CalculateAge(almostEighteen))

	assert.Equal(t, 0, CalculateAge("not-a-date"))
	assert.Equal(t, 0, CalculateAge(""))
}
