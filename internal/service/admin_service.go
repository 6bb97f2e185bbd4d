package service

import (
	"context"
	"time"

	"hongling-sanctuary-be/internal/dto"
	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/pkg/metrics"
	"hongling-sanctuary-be/internal/repository/specification"
	"hongling-sanctuary-be/internal/repository/unitofwork"
)

type IAdminService interface {
	Statistics(ctx context.Context) (*dto.StatisticsResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	metrics    metrics.MetricsProviderInterface
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, metricsProvider metrics.MetricsProviderInterface) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		metrics:    metricsProvider,
	}
}

func (s *adminService) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalCharts, err := uow.BaziChartRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalNarratives, err := uow.NarrativeReportRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	activeSessions, err := uow.UserSessionRepository().Count(ctx, specification.ActiveAt{At: time.Now()})
	if err != nil {
		return nil, err
	}
	uniqueUsers, err := uow.BaziChartRepository().CountDistinctUsers(ctx)
	if err != nil {
		return nil, err
	}

	s.metrics.SetStoredCharts(totalCharts)
	s.metrics.SetActiveSessions(activeSessions)

	return &dto.StatisticsResponse{
		Statistics: entity.Statistics{
			TotalCharts:     totalCharts,
			TotalNarratives: totalNarratives,
			ActiveSessions:  activeSessions,
			UniqueUsers:     uniqueUsers,
		},
	}, nil
}
