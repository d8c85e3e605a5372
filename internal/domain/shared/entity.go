package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all stored records
type Entity interface {
	GetID() string
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all records
type BaseEntity struct {
	ID        string    `json:"id" yaml:"-"`
	CreatedAt time.Time `json:"createdAt" yaml:"-"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"-"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() string {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// Touch re-stamps UpdatedAt. The new value is always strictly after the
// previous one, even when the wall clock has not advanced.
func (e *BaseEntity) Touch(now time.Time) {
	e.UpdatedAt = NextTimestamp(e.UpdatedAt, now)
}

// Stamp assigns a fresh ID and sets both timestamps to now
func (e *BaseEntity) Stamp(now time.Time) {
	*e = NewBaseEntity(now)
}

// NewBaseEntity creates a new base entity with a generated ID
func NewBaseEntity(now time.Time) BaseEntity {
	return BaseEntity{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NextTimestamp returns now, or prev+1ns when now is not after prev
func NextTimestamp(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Nanosecond)
}
