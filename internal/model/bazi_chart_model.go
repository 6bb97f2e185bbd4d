package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BaziChart struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       *string                     `gorm:"type:varchar(255);index"`
	BirthDate    datatypes.JSON              `gorm:"type:jsonb;not null"`
	Pillars      datatypes.JSON              `gorm:"type:jsonb;not null"`
	FiveElements datatypes.JSON              `gorm:"type:jsonb;not null"`
	YinYang      datatypes.JSON              `gorm:"type:jsonb;not null"`
	TenGods      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

func (BaziChart) TableName() string {
	return "bazi_charts"
}
