package implementation

import (
	"context"
	"errors"

	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/mapper"
	"hongling-sanctuary-be/internal/model"
	"hongling-sanctuary-be/internal/repository/contract"
	"hongling-sanctuary-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NarrativeReportRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NarrativeReportMapper
}

func NewNarrativeReportRepository(db *gorm.DB) contract.NarrativeReportRepository {
	return &NarrativeReportRepositoryImpl{
		db:     db,
		mapper: mapper.NewNarrativeReportMapper(),
	}
}

func (r *NarrativeReportRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NarrativeReportRepositoryImpl) Create(ctx context.Context, report *entity.NarrativeReport) error {
	m, err := r.mapper.ToModel(report)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	saved, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*report = *saved
	return nil
}

func (r *NarrativeReportRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NarrativeReport, error) {
	var m model.NarrativeReport
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *NarrativeReportRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NarrativeReport, error) {
	var models []*model.NarrativeReport
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *NarrativeReportRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NarrativeReport{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
