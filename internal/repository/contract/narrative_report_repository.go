package contract

import (
	"context"

	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/repository/specification"
)

type NarrativeReportRepository interface {
	Create(ctx context.Context, report *entity.NarrativeReport) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NarrativeReport, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NarrativeReport, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
