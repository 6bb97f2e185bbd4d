package implementation

import (
	"context"
	"errors"
	"time"

	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/mapper"
	"hongling-sanctuary-be/internal/model"
	"hongling-sanctuary-be/internal/repository/contract"
	"hongling-sanctuary-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserSessionMapper
}

func NewUserSessionRepository(db *gorm.DB) contract.UserSessionRepository {
	return &UserSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserSessionMapper(),
	}
}

func (r *UserSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserSessionRepositoryImpl) Upsert(ctx context.Context, session *entity.UserSession) error {
	m, err := r.mapper.ToModel(session)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_data", "expires_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	saved, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*session = *saved
	return nil
}

func (r *UserSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSession, error) {
	var m model.UserSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *UserSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserSessionRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	result := specification.ExpiredBy{At: time.Now()}.
		Apply(r.db.WithContext(ctx)).
		Delete(&model.UserSession{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
