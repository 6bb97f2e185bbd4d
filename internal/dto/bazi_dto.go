package dto

import (
	"hongling-sanctuary-be/pkg/bazi"
	"hongling-sanctuary-be/pkg/bazi/spirits"

	"github.com/google/uuid"
)

type CalculateRequest struct {
	Year     int    `json:"year" validate:"required"`
	Month    int    `json:"month" validate:"required,gte=1,lte=12"`
	Day      int    `json:"day" validate:"required,gte=1,lte=31"`
	Hour     int    `json:"hour" validate:"gte=0,lte=23"`
	Minute   int    `json:"minute" validate:"gte=0,lte=59"`
	UserName string `json:"userName"`
}

func (r *CalculateRequest) BirthInput() bazi.BirthInput {
	return bazi.BirthInput{
		Year:     r.Year,
		Month:    r.Month,
		Day:      r.Day,
		Hour:     r.Hour,
		Minute:   r.Minute,
		UserName: r.UserName,
	}
}

type CalculateResponse struct {
	Chart bazi.Chart `json:"chart"`
}

type AnalysisRequest struct {
	CalculateRequest
	Tone   string `json:"tone"`
	UserId string `json:"userId"`
}

type AnalysisResponse struct {
	ChartId   uuid.UUID            `json:"chartId"`
	Chart     bazi.Chart           `json:"chart"`
	Narrative bazi.NarrativeReport `json:"narrative"`
	Spirits   []spirits.Spirit     `json:"spirits"`
	Demo      bool                 `json:"demo,omitempty"`
	Cached    bool                 `json:"cached,omitempty"`
}

type ReportRequest struct {
	Pillars  map[bazi.Position]bazi.Pillar `json:"pillars" validate:"required"`
	Tone     string                        `json:"tone"`
	UserName string                        `json:"userName"`
}

// PublishChartCreatedMessage rides the pub/sub channel from the analysis
// flow to the consumer that persists narratives.
type PublishChartCreatedMessage struct {
	ChartId   uuid.UUID            `json:"chart_id"`
	Tone      string               `json:"tone"`
	Narrative bazi.NarrativeReport `json:"narrative"`
}
