package render

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"hongling-sanctuary-be/pkg/bazi"
	"hongling-sanctuary-be/pkg/bazi/spirits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoAnalysis() *bazi.Analysis {
	return &bazi.Analysis{
		Chart: bazi.Chart{
			Pillars: map[bazi.Position]bazi.Pillar{
				bazi.PositionYear:  {Gan: "庚", Zhi: "午", Pillar: "庚午"},
				bazi.PositionMonth: {Gan: "辛", Zhi: "巳", Pillar: "辛巳"},
				bazi.PositionDay:   {Gan: "甲", Zhi: "子", Pillar: "甲子"},
				bazi.PositionHour:  {Gan: "丙", Zhi: "午", Pillar: "丙午"},
			},
			FiveElements: map[string]int{"金": 2, "木": 1, "水": 1, "火": 3, "土": 1},
			YinYang:      map[string]int{"陰": 3, "陽": 5},
		},
		Narrative: bazi.NarrativeReport{
			bazi.PositionYear: {Commander: "金馬將軍", Strategist: "堅韌軍師", NaYin: "路旁土", Story: "年柱故事"},
			bazi.PositionDay:  {Commander: "木鼠將軍", Strategist: "機智先鋒", NaYin: "海中金", Story: "日柱故事"},
		},
	}
}

func TestBuildViewOrdersPillarsCanonically(t *testing.T) {
	view := BuildView(demoAnalysis(), nil, bazi.ToneMilitary, "測試者")

	require.Len(t, view.Pillars, 4)
	assert.Equal(t, "年", view.Pillars[0].Position)
	assert.Equal(t, "月", view.Pillars[1].Position)
	assert.Equal(t, "日", view.Pillars[2].Position)
	assert.Equal(t, "時", view.Pillars[3].Position)

	// narratives only exist for year and day, order still canonical
	require.Len(t, view.Narratives, 2)
	assert.Equal(t, "年", view.Narratives[0].Position)
	assert.Equal(t, "日", view.Narratives[1].Position)
}

func TestBuildViewElementPercentages(t *testing.T) {
	view := BuildView(demoAnalysis(), nil, bazi.ToneDefault, "")

	require.Len(t, view.Elements, 5)
	byName := map[string]ElementView{}
	for _, e := range view.Elements {
		byName[e.Name] = e
	}
	assert.Equal(t, 3, byName["火"].Count)
	assert.Equal(t, 37, byName["火"].Percent) // 3 of 8
	assert.Equal(t, 3, view.YinCount)
	assert.Equal(t, 5, view.YangCount)
}

func TestRenderReportProducesCompletePage(t *testing.T) {
	r, err := NewRenderer(nil, "")
	require.NoError(t, err)

	spiritList := []spirits.Spirit{spirits.Sentinel()}
	view := BuildView(demoAnalysis(), spiritList, bazi.ToneMilitary, "測試者")

	var buf bytes.Buffer
	require.NoError(t, r.RenderReport(&buf, view))

	html := buf.String()
	assert.Contains(t, html, `id="report-container"`)
	assert.Contains(t, html, "庚午")
	assert.Contains(t, html, "年柱故事")
	assert.Contains(t, html, "測試者")
	assert.Contains(t, html, "（本盤暫無核心神煞）")
	// radar asset not configured, block must be absent
	assert.NotContains(t, html, "elements-radar")
}

func TestRenderReportIncludesChartAssetWhenConfigured(t *testing.T) {
	r, err := NewRenderer(nil, "/static/chart.min.js")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderReport(&buf, BuildView(demoAnalysis(), nil, bazi.ToneDefault, "")))

	assert.Contains(t, buf.String(), "/static/chart.min.js")
	assert.Contains(t, buf.String(), "elements-radar")
}

// slowWriter blocks mid-write so a second render can race the first.
type slowWriter struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (w *slowWriter) Write(p []byte) (int, error) {
	w.once.Do(func() {
		close(w.started)
		<-w.release
	})
	return len(p), nil
}

func TestConcurrentRenderIsDroppedNotQueued(t *testing.T) {
	r, err := NewRenderer(nil, "")
	require.NoError(t, err)

	view := BuildView(demoAnalysis(), nil, bazi.ToneDefault, "")
	w := &slowWriter{started: make(chan struct{}), release: make(chan struct{})}

	done := make(chan error, 1)
	go func() {
		done <- r.RenderReport(w, view)
	}()

	<-w.started
	err = r.RenderReport(io.Discard, view)
	assert.ErrorIs(t, err, ErrRenderInFlight)

	close(w.release)
	require.NoError(t, <-done)

	// renderer returns to idle once the first render finishes
	var buf bytes.Buffer
	assert.Eventually(t, func() bool {
		return r.RenderReport(&buf, view) == nil
	}, time.Second, 10*time.Millisecond)
}
