package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId string
	UserData  map[string]interface{}
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session lapsed before the given instant.
func (s *UserSession) Expired(at time.Time) bool {
	return !s.ExpiresAt.After(at)
}
