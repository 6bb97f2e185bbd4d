package entity

import (
	"time"

	"hongling-sanctuary-be/pkg/bazi"

	"github.com/google/uuid"
)

type BaziChart struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       *string
	BirthDate    bazi.BirthInput
	Pillars      map[bazi.Position]bazi.Pillar
	FiveElements map[string]int
	YinYang      map[string]int
	TenGods      []string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Chart folds the persisted columns back into the domain shape.
func (c *BaziChart) Chart() bazi.Chart {
	return bazi.Chart{
		Pillars:      c.Pillars,
		FiveElements: c.FiveElements,
		YinYang:      c.YinYang,
		TenGods:      c.TenGods,
	}
}
