package service

import (
	"context"

	"hongling-sanctuary-be/internal/dto"
	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/repository/specification"
	"hongling-sanctuary-be/internal/repository/unitofwork"
	"hongling-sanctuary-be/pkg/bazi"

	"github.com/google/uuid"
)

type IChartService interface {
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowChartResponse, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) (*dto.ListChartsResponse, error)
	Narratives(ctx context.Context, chartId uuid.UUID) (*dto.ListNarrativesResponse, error)
	NarrativeByTone(ctx context.Context, chartId uuid.UUID, tone string) (*dto.NarrativeResponse, error)
}

const defaultChartPageSize = 20

type chartService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChartService(uowFactory unitofwork.RepositoryFactory) IChartService {
	return &chartService{
		uowFactory: uowFactory,
	}
}

func (s *chartService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowChartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	chart, err := uow.BaziChartRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if chart == nil {
		return nil, nil // Not found
	}
	return chartToResponse(chart), nil
}

// ListByUser returns the user's charts newest first. A limit of zero or
// less falls back to the default page size.
func (s *chartService) ListByUser(ctx context.Context, userId string, limit, offset int) (*dto.ListChartsResponse, error) {
	if limit <= 0 {
		limit = defaultChartPageSize
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	charts, err := uow.BaziChartRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ListChartsResponse{Charts: make([]*dto.ShowChartResponse, len(charts))}
	for i, chart := range charts {
		res.Charts[i] = chartToResponse(chart)
	}
	return res, nil
}

func (s *chartService) Narratives(ctx context.Context, chartId uuid.UUID) (*dto.ListNarrativesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reports, err := uow.NarrativeReportRepository().FindAll(ctx,
		specification.ByChartID{ChartID: chartId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.ListNarrativesResponse{Narratives: make([]*dto.NarrativeResponse, len(reports))}
	for i, report := range reports {
		res.Narratives[i] = narrativeToResponse(report)
	}
	return res, nil
}

// NarrativeByTone returns the newest narrative stored for the chart in
// the given tone, or nil when none exists.
func (s *chartService) NarrativeByTone(ctx context.Context, chartId uuid.UUID, tone string) (*dto.NarrativeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	report, err := uow.NarrativeReportRepository().FindOne(ctx,
		specification.ByChartID{ChartID: chartId},
		specification.ByTone{Tone: string(bazi.NormalizeTone(tone))},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, nil // Not found
	}
	return narrativeToResponse(report), nil
}

func chartToResponse(chart *entity.BaziChart) *dto.ShowChartResponse {
	return &dto.ShowChartResponse{
		Id:           chart.Id,
		UserId:       chart.UserId,
		BirthDate:    chart.BirthDate,
		Pillars:      chart.Pillars,
		FiveElements: chart.FiveElements,
		YinYang:      chart.YinYang,
		TenGods:      chart.TenGods,
		CreatedAt:    chart.CreatedAt,
	}
}

func narrativeToResponse(report *entity.NarrativeReport) *dto.NarrativeResponse {
	return &dto.NarrativeResponse{
		Id:        report.Id,
		ChartId:   report.ChartId,
		Tone:      string(report.Tone),
		Narrative: report.Narrative,
		CreatedAt: report.CreatedAt,
	}
}
