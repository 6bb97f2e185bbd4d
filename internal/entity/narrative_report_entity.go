package entity

import (
	"time"

	"hongling-sanctuary-be/pkg/bazi"

	"github.com/google/uuid"
)

type NarrativeReport struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChartId   uuid.UUID `gorm:"type:uuid;index"`
	Tone      bazi.Tone
	Narrative bazi.NarrativeReport
	CreatedAt time.Time
}
