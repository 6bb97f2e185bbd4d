package mapper

import (
	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/model"
	"hongling-sanctuary-be/pkg/bazi"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

type NarrativeReportMapper struct{}

func NewNarrativeReportMapper() *NarrativeReportMapper {
	return &NarrativeReportMapper{}
}

func (m *NarrativeReportMapper) ToEntity(r *model.NarrativeReport) (*entity.NarrativeReport, error) {
	if r == nil {
		return nil, nil
	}

	var narrative bazi.NarrativeReport
	if len(r.NarrativeData) > 0 {
		if err := json.Unmarshal(r.NarrativeData, &narrative); err != nil {
			return nil, err
		}
	}

	return &entity.NarrativeReport{
		Id:        r.Id,
		ChartId:   r.ChartId,
		Tone:      bazi.Tone(r.Tone),
		Narrative: narrative,
		CreatedAt: r.CreatedAt,
	}, nil
}

func (m *NarrativeReportMapper) ToModel(r *entity.NarrativeReport) (*model.NarrativeReport, error) {
	if r == nil {
		return nil, nil
	}

	narrativeData, err := json.Marshal(r.Narrative)
	if err != nil {
		return nil, err
	}

	return &model.NarrativeReport{
		Id:            r.Id,
		ChartId:       r.ChartId,
		Tone:          string(r.Tone),
		NarrativeData: datatypes.JSON(narrativeData),
		CreatedAt:     r.CreatedAt,
	}, nil
}

func (m *NarrativeReportMapper) ToEntities(reports []*model.NarrativeReport) ([]*entity.NarrativeReport, error) {
	entities := make([]*entity.NarrativeReport, len(reports))
	for i, r := range reports {
		e, err := m.ToEntity(r)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
