package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NarrativeReport struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChartId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Chart         *BaziChart     `gorm:"foreignKey:ChartId;constraint:OnDelete:CASCADE"`
	Tone          string         `gorm:"type:varchar(50);not null;index"`
	NarrativeData datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (NarrativeReport) TableName() string {
	return "narrative_reports"
}
