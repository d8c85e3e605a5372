package shared

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEntity(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	e := NewBaseEntity(now)

	_, err := uuid.Parse(e.ID)
	assert.NoError(t, err)
	assert.Equal(t, now, e.CreatedAt)
	assert.Equal(t, now, e.UpdatedAt)

	other := NewBaseEntity(now)
	assert.NotEqual(t, e.ID, other.ID)
}

func TestBaseEntity_Touch(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	e := NewBaseEntity(now)

	t.Run("clock advanced", func(t *testing.T) {
		later := now.Add(time.Second)
		e.Touch(later)
		assert.Equal(t, later, e.UpdatedAt)
	})

	t.Run("clock did not advance", func(t *testing.T) {
		prev := e.UpdatedAt
		e.Touch(prev)
		assert.True(t, e.UpdatedAt.After(prev))
		assert.Equal(t, prev.Add(time.Nanosecond), e.UpdatedAt)
	})

	t.Run("clock went backwards", func(t *testing.T) {
		prev := e.UpdatedAt
		e.Touch(prev.Add(-time.Hour))
		assert.True(t, e.UpdatedAt.After(prev))
	})

	assert.Equal(t, now, e.CreatedAt)
}
