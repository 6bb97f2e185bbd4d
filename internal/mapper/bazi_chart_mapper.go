package mapper

import (
	"time"

	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/model"
	"hongling-sanctuary-be/pkg/bazi"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

type BaziChartMapper struct{}

func NewBaziChartMapper() *BaziChartMapper {
	return &BaziChartMapper{}
}

func (m *BaziChartMapper) ToEntity(c *model.BaziChart) (*entity.BaziChart, error) {
	if c == nil {
		return nil, nil
	}

	var birthDate bazi.BirthInput
	if len(c.BirthDate) > 0 {
		if err := json.Unmarshal(c.BirthDate, &birthDate); err != nil {
			return nil, err
		}
	}

	var pillars map[bazi.Position]bazi.Pillar
	if len(c.Pillars) > 0 {
		if err := json.Unmarshal(c.Pillars, &pillars); err != nil {
			return nil, err
		}
	}

	var fiveElements map[string]int
	if len(c.FiveElements) > 0 {
		if err := json.Unmarshal(c.FiveElements, &fiveElements); err != nil {
			return nil, err
		}
	}

	var yinYang map[string]int
	if len(c.YinYang) > 0 {
		if err := json.Unmarshal(c.YinYang, &yinYang); err != nil {
			return nil, err
		}
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.BaziChart{
		Id:           c.Id,
		UserId:       c.UserId,
		BirthDate:    birthDate,
		Pillars:      pillars,
		FiveElements: fiveElements,
		YinYang:      yinYang,
		TenGods:      []string(c.TenGods),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func (m *BaziChartMapper) ToModel(c *entity.BaziChart) (*model.BaziChart, error) {
	if c == nil {
		return nil, nil
	}

	birthDate, err := json.Marshal(c.BirthDate)
	if err != nil {
		return nil, err
	}
	pillars, err := json.Marshal(c.Pillars)
	if err != nil {
		return nil, err
	}
	fiveElements, err := json.Marshal(c.FiveElements)
	if err != nil {
		return nil, err
	}
	yinYang, err := json.Marshal(c.YinYang)
	if err != nil {
		return nil, err
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.BaziChart{
		Id:           c.Id,
		UserId:       c.UserId,
		BirthDate:    datatypes.JSON(birthDate),
		Pillars:      datatypes.JSON(pillars),
		FiveElements: datatypes.JSON(fiveElements),
		YinYang:      datatypes.JSON(yinYang),
		TenGods:      datatypes.NewJSONSlice(c.TenGods),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func (m *BaziChartMapper) ToEntities(charts []*model.BaziChart) ([]*entity.BaziChart, error) {
	entities := make([]*entity.BaziChart, len(charts))
	for i, c := range charts {
		e, err := m.ToEntity(c)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
