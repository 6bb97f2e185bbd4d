package contract

import (
	"context"

	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/repository/specification"
)

type BaziChartRepository interface {
	Create(ctx context.Context, chart *entity.BaziChart) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BaziChart, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BaziChart, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountDistinctUsers(ctx context.Context) (int64, error)
}
