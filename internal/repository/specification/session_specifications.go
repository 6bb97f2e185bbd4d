package specification

import (
	"time"

	"gorm.io/gorm"
)

type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ActiveAt keeps sessions that have not yet expired at the given instant.
type ActiveAt struct {
	At time.Time
}

func (s ActiveAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at > ?", s.At)
}

// ExpiredBy keeps sessions whose expiry is at or before the given instant.
type ExpiredBy struct {
	At time.Time
}

func (s ExpiredBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at <= ?", s.At)
}
