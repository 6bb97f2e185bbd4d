package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hongling-sanctuary-be/internal/dto"
	"hongling-sanctuary-be/internal/pkg/metrics"
	"hongling-sanctuary-be/internal/repository/memory"
	"hongling-sanctuary-be/internal/repository/specification"
	"hongling-sanctuary-be/pkg/apiclient"
	"hongling-sanctuary-be/pkg/bazi"
	"hongling-sanctuary-be/pkg/cache"
	"hongling-sanctuary-be/pkg/narrative"
	"hongling-sanctuary-be/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUpstream struct {
	computeCalls  int
	analysisCalls int
	chart         *bazi.Chart
	analysis      *bazi.Analysis
	err           error
}

func (f *fakeUpstream) ComputeChart(ctx context.Context, input bazi.BirthInput) (*bazi.Chart, error) {
	f.computeCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.chart, nil
}

func (f *fakeUpstream) FullAnalysis(ctx context.Context, input bazi.BirthInput, tone bazi.Tone) (*bazi.Analysis, error) {
	f.analysisCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type recordingPublisher struct {
	payloads [][]byte
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

func upstreamAnalysis() *bazi.Analysis {
	return apiclient.DemoAnalysis(bazi.BirthInput{Year: 1984, Month: 10, Day: 6, Hour: 20}, bazi.ToneDefault)
}

func newTestBaziService(t *testing.T, upstream UpstreamClient) (IBaziService, *memory.Factory, *recordingPublisher) {
	t.Helper()
	factory := memory.NewFactory()
	publisher := &recordingPublisher{}
	renderer, err := render.NewRenderer(nil, "")
	require.NoError(t, err)

	svc := NewBaziService(
		factory,
		upstream,
		narrative.NewLocalGenerator(),
		cache.NewMemoryCache(time.Minute),
		publisher,
		renderer,
		noopLogger{},
		metrics.NoopMetrics{},
	)
	return svc, factory, publisher
}

func analysisRequest() *dto.AnalysisRequest {
	return &dto.AnalysisRequest{
		CalculateRequest: dto.CalculateRequest{Year: 1984, Month: 10, Day: 6, Hour: 20},
		Tone:             "military",
		UserId:           "user-1",
	}
}

func TestAnalyzePersistsChartAndPublishes(t *testing.T) {
	upstream := &fakeUpstream{analysis: upstreamAnalysis()}
	svc, factory, publisher := newTestBaziService(t, upstream)

	res, err := svc.Analyze(context.Background(), analysisRequest())
	require.NoError(t, err)

	assert.False(t, res.Demo)
	assert.False(t, res.Cached)
	assert.Equal(t, "庚午", res.Chart.Pillars[bazi.PositionYear].Pillar)
	assert.NotEmpty(t, res.Spirits)

	uow := factory.NewUnitOfWork(context.Background())
	chart, err := uow.BaziChartRepository().FindOne(context.Background(), specification.ByID{ID: res.ChartId})
	require.NoError(t, err)
	require.NotNil(t, chart)
	require.NotNil(t, chart.UserId)
	assert.Equal(t, "user-1", *chart.UserId)

	require.Len(t, publisher.payloads, 1)
	assert.Contains(t, string(publisher.payloads[0]), res.ChartId.String())
}

func TestAnalyzeFallsBackToDemoOnUpstreamFailure(t *testing.T) {
	upstream := &fakeUpstream{err: errors.New("connection refused")}
	svc, factory, _ := newTestBaziService(t, upstream)

	res, err := svc.Analyze(context.Background(), analysisRequest())
	require.NoError(t, err, "upstream failure must not surface on the analysis path")

	assert.True(t, res.Demo)
	assert.Equal(t, "庚午", res.Chart.Pillars[bazi.PositionYear].Pillar)
	for _, pos := range bazi.Positions {
		entry, ok := res.Narrative[pos]
		require.True(t, ok, "demo narrative missing %s", pos)
		assert.NotEmpty(t, entry.Story)
	}
	// military tone flavors the demo stories
	assert.Contains(t, res.Narrative[bazi.PositionYear].Commander, "將軍")

	// even the demo chart is persisted so the response id resolves
	uow := factory.NewUnitOfWork(context.Background())
	chart, err := uow.BaziChartRepository().FindOne(context.Background(), specification.ByID{ID: res.ChartId})
	require.NoError(t, err)
	assert.NotNil(t, chart)
}

func TestAnalyzeServesSecondRequestFromCache(t *testing.T) {
	upstream := &fakeUpstream{analysis: upstreamAnalysis()}
	svc, _, _ := newTestBaziService(t, upstream)

	_, err := svc.Analyze(context.Background(), analysisRequest())
	require.NoError(t, err)

	res, err := svc.Analyze(context.Background(), analysisRequest())
	require.NoError(t, err)

	assert.True(t, res.Cached)
	assert.Equal(t, 1, upstream.analysisCalls, "second request must not hit upstream")
}

func TestAnalyzeGeneratesNarrativeWhenUpstreamOmitsIt(t *testing.T) {
	analysis := upstreamAnalysis()
	analysis.Narrative = nil
	upstream := &fakeUpstream{analysis: analysis}
	svc, _, _ := newTestBaziService(t, upstream)

	res, err := svc.Analyze(context.Background(), analysisRequest())
	require.NoError(t, err)

	require.Len(t, res.Narrative, 4)
	for _, pos := range bazi.Positions {
		assert.NotEmpty(t, res.Narrative[pos].Story)
	}
}

func TestCalculatePropagatesUpstreamError(t *testing.T) {
	upstream := &fakeUpstream{err: errors.New("boom")}
	svc, _, _ := newTestBaziService(t, upstream)

	_, err := svc.Calculate(context.Background(), &dto.CalculateRequest{Year: 1984, Month: 10, Day: 6, Hour: 20})
	require.Error(t, err)
}

func TestRenderReportProducesHTML(t *testing.T) {
	svc, _, _ := newTestBaziService(t, &fakeUpstream{})

	html, err := svc.RenderReport(context.Background(), &dto.ReportRequest{
		Pillars: map[bazi.Position]bazi.Pillar{
			bazi.PositionYear:  {Gan: "庚", Zhi: "午", Pillar: "庚午"},
			bazi.PositionMonth: {Gan: "辛", Zhi: "巳", Pillar: "辛巳"},
			bazi.PositionDay:   {Gan: "甲", Zhi: "子", Pillar: "甲子"},
			bazi.PositionHour:  {Gan: "丙", Zhi: "午", Pillar: "丙午"},
		},
		Tone:     "poetic",
		UserName: "測試者",
	})
	require.NoError(t, err)

	page := string(html)
	assert.Contains(t, page, `id="report-container"`)
	assert.Contains(t, page, "庚午")
	assert.Contains(t, page, "測試者")
}

func TestRenderReportFillsNaYinForEveryPillar(t *testing.T) {
	svc, _, _ := newTestBaziService(t, &fakeUpstream{})

	html, err := svc.RenderReport(context.Background(), &dto.ReportRequest{
		Pillars: map[bazi.Position]bazi.Pillar{
			bazi.PositionYear:  {Gan: "庚", Zhi: "午", Pillar: "庚午"},
			bazi.PositionMonth: {Gan: "辛", Zhi: "巳", Pillar: "辛巳"},
			bazi.PositionDay:   {Gan: "甲", Zhi: "子", Pillar: "甲子"},
			bazi.PositionHour:  {Gan: "丙", Zhi: "午", Pillar: "丙午"},
		},
		Tone: "default",
	})
	require.NoError(t, err)

	page := string(html)
	assert.NotContains(t, page, "納音：</p>", "every pillar card must carry a melodic element")
	for _, ny := range []string{"路旁土", "白鑞金", "海中金", "天河水"} {
		assert.Contains(t, page, ny)
	}
}
