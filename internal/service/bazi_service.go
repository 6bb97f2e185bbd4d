package service

import (
	"bytes"
	"context"
	"time"

	"hongling-sanctuary-be/internal/dto"
	"hongling-sanctuary-be/internal/entity"
	"hongling-sanctuary-be/internal/pkg/logger"
	"hongling-sanctuary-be/internal/pkg/metrics"
	"hongling-sanctuary-be/internal/repository/unitofwork"
	"hongling-sanctuary-be/pkg/apiclient"
	"hongling-sanctuary-be/pkg/bazi"
	"hongling-sanctuary-be/pkg/bazi/spirits"
	"hongling-sanctuary-be/pkg/cache"
	"hongling-sanctuary-be/pkg/narrative"
	"hongling-sanctuary-be/pkg/render"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// UpstreamClient is the slice of the calculation API the service needs.
type UpstreamClient interface {
	ComputeChart(ctx context.Context, input bazi.BirthInput) (*bazi.Chart, error)
	FullAnalysis(ctx context.Context, input bazi.BirthInput, tone bazi.Tone) (*bazi.Analysis, error)
}

type IBaziService interface {
	Calculate(ctx context.Context, req *dto.CalculateRequest) (*dto.CalculateResponse, error)
	Analyze(ctx context.Context, req *dto.AnalysisRequest) (*dto.AnalysisResponse, error)
	RenderReport(ctx context.Context, req *dto.ReportRequest) ([]byte, error)
}

type baziService struct {
	uowFactory       unitofwork.RepositoryFactory
	upstream         UpstreamClient
	generator        narrative.Generator
	analysisCache    cache.AnalysisCache
	publisherService IPublisherService
	renderer         *render.Renderer
	log              logger.ILogger
	metrics          metrics.MetricsProviderInterface
}

func NewBaziService(
	uowFactory unitofwork.RepositoryFactory,
	upstream UpstreamClient,
	generator narrative.Generator,
	analysisCache cache.AnalysisCache,
	publisherService IPublisherService,
	renderer *render.Renderer,
	log logger.ILogger,
	metricsProvider metrics.MetricsProviderInterface,
) IBaziService {
	return &baziService{
		uowFactory:       uowFactory,
		upstream:         upstream,
		generator:        generator,
		analysisCache:    analysisCache,
		publisherService: publisherService,
		renderer:         renderer,
		log:              log,
		metrics:          metricsProvider,
	}
}

// Calculate computes a bare chart. Upstream failures are surfaced
// unchanged; there is deliberately no demo fallback on this path.
func (s *baziService) Calculate(ctx context.Context, req *dto.CalculateRequest) (*dto.CalculateResponse, error) {
	chart, err := s.upstream.ComputeChart(ctx, req.BirthInput())
	if err != nil {
		return nil, err
	}
	return &dto.CalculateResponse{Chart: *chart}, nil
}

// Analyze produces the full chart + narrative bundle. The analysis is
// served from cache when the same birth data and tone were asked before,
// and degrades to the canned demo dataset when upstream is unreachable.
// The chart row is written synchronously so the response carries its id;
// the narrative row is persisted by the consumer off the event channel.
func (s *baziService) Analyze(ctx context.Context, req *dto.AnalysisRequest) (*dto.AnalysisResponse, error) {
	tone := bazi.NormalizeTone(req.Tone)
	input := req.BirthInput()
	s.metrics.IncAnalysisRequests(string(tone))

	var (
		analysis *bazi.Analysis
		demo     bool
		cached   bool
	)

	cacheKey := cache.Key(input, tone)
	if hit, found := s.analysisCache.Get(ctx, cacheKey); found {
		analysis = hit
		cached = true
		s.metrics.IncCacheHits()
	} else {
		s.metrics.IncCacheMisses()
		fetched, err := s.upstream.FullAnalysis(ctx, input, tone)
		if err != nil {
			s.log.Warn("bazi", "upstream analysis failed, serving demo dataset", map[string]interface{}{
				"error": err.Error(),
			})
			s.metrics.IncDemoFallbacks()
			fetched = apiclient.DemoAnalysis(input, tone)
			demo = true
		} else {
			s.analysisCache.Set(ctx, cacheKey, fetched)
		}
		analysis = fetched
	}

	if len(analysis.Narrative) == 0 {
		// upstream returned a chart without stories; generate them here
		s.metrics.IncNarrativeFallbacks()
		spiritNames := spirits.Names(spirits.Calculate(analysis.Chart))
		report, err := s.generator.GenerateReport(ctx, analysis.Chart, nil, spiritNames, tone, input.UserName)
		if err != nil {
			return nil, err
		}
		analysis.Narrative = report
	}

	spiritList := spirits.Calculate(analysis.Chart)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	chart := entity.BaziChart{
		Id:           uuid.New(),
		BirthDate:    input,
		Pillars:      analysis.Chart.Pillars,
		FiveElements: analysis.Chart.FiveElements,
		YinYang:      analysis.Chart.YinYang,
		TenGods:      analysis.Chart.TenGods,
		CreatedAt:    time.Now(),
	}
	if req.UserId != "" {
		userId := req.UserId
		chart.UserId = &userId
	}
	if err := uow.BaziChartRepository().Create(ctx, &chart); err != nil {
		return nil, err
	}

	msgPayload := dto.PublishChartCreatedMessage{
		ChartId:   chart.Id,
		Tone:      string(tone),
		Narrative: analysis.Narrative,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.AnalysisResponse{
		ChartId:   chart.Id,
		Chart:     analysis.Chart,
		Narrative: analysis.Narrative,
		Spirits:   spiritList,
		Demo:      demo,
		Cached:    cached,
	}, nil
}

// RenderReport generates stories for the given pillars and renders the
// HTML report page. Render errors, including a render already being in
// flight, propagate to the caller.
func (s *baziService) RenderReport(ctx context.Context, req *dto.ReportRequest) ([]byte, error) {
	tone := bazi.NormalizeTone(req.Tone)

	elements, yinYang := bazi.DeriveCounts(req.Pillars)
	chart := bazi.Chart{
		Pillars:      req.Pillars,
		FiveElements: elements,
		YinYang:      yinYang,
	}

	spiritList := spirits.Calculate(chart)
	report, err := s.generator.GenerateReport(ctx, chart, nil, spirits.Names(spiritList), tone, req.UserName)
	if err != nil {
		return nil, err
	}

	analysis := &bazi.Analysis{Chart: chart, Narrative: report}
	view := render.BuildView(analysis, spiritList, tone, req.UserName)

	var buf bytes.Buffer
	if err := s.renderer.RenderReport(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
