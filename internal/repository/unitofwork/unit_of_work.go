package unitofwork

import (
	"context"

	"hongling-sanctuary-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BaziChartRepository() contract.BaziChartRepository
	NarrativeReportRepository() contract.NarrativeReportRepository
	UserSessionRepository() contract.UserSessionRepository
}
