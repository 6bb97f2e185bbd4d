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

type BaziChartRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BaziChartMapper
}

func NewBaziChartRepository(db *gorm.DB) contract.BaziChartRepository {
	return &BaziChartRepositoryImpl{
		db:     db,
		mapper: mapper.NewBaziChartMapper(),
	}
}

func (r *BaziChartRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BaziChartRepositoryImpl) Create(ctx context.Context, chart *entity.BaziChart) error {
	m, err := r.mapper.ToModel(chart)
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
	*chart = *saved
	return nil
}

func (r *BaziChartRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BaziChart, error) {
	var m model.BaziChart
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *BaziChartRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BaziChart, error) {
	var models []*model.BaziChart
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *BaziChartRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.BaziChart{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BaziChartRepositoryImpl) CountDistinctUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BaziChart{}).
		Where("user_id IS NOT NULL").
		Distinct("user_id").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
