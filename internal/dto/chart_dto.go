package dto

import (
	"time"

	"hongling-sanctuary-be/pkg/bazi"

	"github.com/google/uuid"
)

type ShowChartResponse struct {
	Id           uuid.UUID                     `json:"id"`
	UserId       *string                       `json:"userId,omitempty"`
	BirthDate    bazi.BirthInput               `json:"birthDate"`
	Pillars      map[bazi.Position]bazi.Pillar `json:"pillars"`
	FiveElements map[string]int                `json:"fiveElements"`
	YinYang      map[string]int                `json:"yinYang"`
	TenGods      []string                      `json:"tenGods,omitempty"`
	CreatedAt    time.Time                     `json:"createdAt"`
}

type ListChartsResponse struct {
	Charts []*ShowChartResponse `json:"charts"`
}

type NarrativeResponse struct {
	Id        uuid.UUID            `json:"id"`
	ChartId   uuid.UUID            `json:"chartId"`
	Tone      string               `json:"tone"`
	Narrative bazi.NarrativeReport `json:"narrative"`
	CreatedAt time.Time            `json:"createdAt"`
}

type ListNarrativesResponse struct {
	Narratives []*NarrativeResponse `json:"narratives"`
}
