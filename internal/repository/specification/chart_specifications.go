package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUserID struct {
	UserID string
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByChartID struct {
	ChartID uuid.UUID
}

func (s ByChartID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chart_id = ?", s.ChartID)
}

type ByTone struct {
	Tone string
}

func (s ByTone) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tone = ?", s.Tone)
}
