// Package memory provides map-backed repository implementations used by
// tests and by deployments that run without Postgres. Filtering honours
// the same specification types the GORM implementations use.
package memory

import (
	"context"

	"hongling-sanctuary-be/internal/repository/contract"
	"hongling-sanctuary-be/internal/repository/unitofwork"
)

type Factory struct {
	charts     *BaziChartRepository
	narratives *NarrativeReportRepository
	sessions   *UserSessionRepository
}

func NewFactory() *Factory {
	return &Factory{
		charts:     NewBaziChartRepository(),
		narratives: NewNarrativeReportRepository(),
		sessions:   NewUserSessionRepository(),
	}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{factory: f}
}

// memoryUnitOfWork has no real transactions; Begin/Commit/Rollback are
// accepted so service code written against the Postgres factory still runs.
type memoryUnitOfWork struct {
	factory *Factory
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) BaziChartRepository() contract.BaziChartRepository {
	return u.factory.charts
}

func (u *memoryUnitOfWork) NarrativeReportRepository() contract.NarrativeReportRepository {
	return u.factory.narratives
}

func (u *memoryUnitOfWork) UserSessionRepository() contract.UserSessionRepository {
	return u.factory.sessions
}
