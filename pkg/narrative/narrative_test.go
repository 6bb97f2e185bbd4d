package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hongling-sanctuary-be/pkg/bazi"
	"hongling-sanctuary-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChart() bazi.Chart {
	return bazi.Chart{
		Pillars: map[bazi.Position]bazi.Pillar{
			bazi.PositionYear:  {Gan: "庚", Zhi: "午", Pillar: "庚午"},
			bazi.PositionMonth: {Gan: "辛", Zhi: "巳", Pillar: "辛巳"},
			bazi.PositionDay:   {Gan: "甲", Zhi: "子", Pillar: "甲子"},
			bazi.PositionHour:  {Gan: "丙", Zhi: "午", Pillar: "丙午"},
		},
		FiveElements: map[string]int{"金": 2, "木": 1, "水": 1, "火": 3, "土": 1},
		YinYang:      map[string]int{"陰": 3, "陽": 5},
		TenGods:      []string{"正財", "偏官", "正印", "食神"},
	}
}

func testNaYin() map[bazi.Position]string {
	return map[bazi.Position]string{
		bazi.PositionYear:  "路旁土",
		bazi.PositionMonth: "白鑞金",
		bazi.PositionDay:   "海中金",
		bazi.PositionHour:  "天河水",
	}
}

func TestLocalGeneratorIsDeterministic(t *testing.T) {
	g := NewLocalGenerator()
	req := Request{
		Position: bazi.PositionDay,
		Pillar:   bazi.Pillar{Gan: "甲", Zhi: "子", Pillar: "甲子"},
		NaYin:    "海中金",
		TenGod:   "正印",
		Spirits:  []string{"天乙貴人", "文昌"},
		Tone:     bazi.ToneMilitary,
	}

	first, err := g.GeneratePillar(context.Background(), req)
	require.NoError(t, err)
	second, err := g.GeneratePillar(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input must yield byte-identical output")
	assert.Contains(t, first, "甲子")
	assert.Contains(t, first, "海中金")
	assert.Contains(t, first, "天乙貴人")
}

func TestLocalGeneratorToneFlavoring(t *testing.T) {
	g := NewLocalGenerator()
	base := Request{
		Position: bazi.PositionYear,
		Pillar:   bazi.Pillar{Gan: "庚", Zhi: "午", Pillar: "庚午"},
		NaYin:    "路旁土",
	}

	base.Tone = bazi.ToneMilitary
	military, err := g.GeneratePillar(context.Background(), base)
	require.NoError(t, err)

	base.Tone = bazi.ToneHealing
	healing, err := g.GeneratePillar(context.Background(), base)
	require.NoError(t, err)

	assert.NotEqual(t, military, healing)
	assert.Contains(t, military, "將軍")
	assert.Contains(t, healing, "療癒師")
}

func TestLocalGeneratorUnknownToneFallsBackToDefault(t *testing.T) {
	g := NewLocalGenerator()
	req := Request{
		Position: bazi.PositionHour,
		Pillar:   bazi.Pillar{Gan: "丙", Zhi: "午", Pillar: "丙午"},
		NaYin:    "天河水",
		Tone:     bazi.Tone("savage"),
	}
	story, err := g.GeneratePillar(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, story, "守護者")
}

func TestLocalGenerateReportCoversAllPillars(t *testing.T) {
	g := NewLocalGenerator()
	report, err := g.GenerateReport(context.Background(), testChart(), testNaYin(), nil, bazi.ToneDefault, "")
	require.NoError(t, err)
	require.Len(t, report, 4)

	for _, pos := range bazi.Positions {
		entry, ok := report[pos]
		require.True(t, ok, "pillar %s missing from report", pos)
		assert.NotEmpty(t, entry.Commander)
		assert.NotEmpty(t, entry.Strategist)
		assert.NotEmpty(t, entry.NaYin)
		assert.NotEmpty(t, entry.Story)
	}
	assert.Equal(t, "正印", report[bazi.PositionDay].TenGod)
}

func TestGenerateReportDerivesNaYinWhenNoneSupplied(t *testing.T) {
	g := NewLocalGenerator()
	report, err := g.GenerateReport(context.Background(), testChart(), nil, nil, bazi.ToneDefault, "")
	require.NoError(t, err)
	require.Len(t, report, 4)

	assert.Equal(t, "路旁土", report[bazi.PositionYear].NaYin)
	assert.Equal(t, "白鑞金", report[bazi.PositionMonth].NaYin)
	assert.Equal(t, "海中金", report[bazi.PositionDay].NaYin)
	assert.Equal(t, "天河水", report[bazi.PositionHour].NaYin)

	// a caller-supplied value wins over the table
	override := map[bazi.Position]string{bazi.PositionYear: "上游納音"}
	report, err = g.GenerateReport(context.Background(), testChart(), override, nil, bazi.ToneDefault, "")
	require.NoError(t, err)
	assert.Equal(t, "上游納音", report[bazi.PositionYear].NaYin)
	assert.Equal(t, "海中金", report[bazi.PositionDay].NaYin)
}

// failingProvider always errors, simulating an unreachable model backend.
type failingProvider struct{}

func (failingProvider) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return "", errors.New("connection refused")
}

func (p failingProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, nil)
}

// recordingProvider captures the prompts it receives.
type recordingProvider struct {
	prompts []string
	reply   string
}

func (p *recordingProvider) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	for _, m := range history {
		if m.Role == "user" {
			p.prompts = append(p.prompts, m.Content)
		}
	}
	return p.reply, nil
}

func (p *recordingProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}})
}

func TestRemoteGeneratorFallsBackOnProviderFailure(t *testing.T) {
	g := NewRemoteGenerator(failingProvider{}, nil, 0)
	req := Request{
		Position: bazi.PositionDay,
		Pillar:   bazi.Pillar{Gan: "甲", Zhi: "子", Pillar: "甲子"},
		NaYin:    "海中金",
		Tone:     bazi.ToneDefault,
	}

	story, err := g.GeneratePillar(context.Background(), req)
	require.NoError(t, err, "remote failure must never reach the caller")

	local, _ := NewLocalGenerator().GeneratePillar(context.Background(), req)
	assert.Equal(t, local, story)
}

func TestRemoteGeneratorUsesProviderReply(t *testing.T) {
	p := &recordingProvider{reply: "🛡️ 模型生成的故事"}
	g := NewRemoteGenerator(p, nil, 0)

	report, err := g.GenerateReport(context.Background(), testChart(), testNaYin(), []string{"天乙貴人"}, bazi.ToneMythic, "阿虹")
	require.NoError(t, err)
	require.Len(t, report, 4)
	for _, entry := range report {
		assert.Equal(t, "🛡️ 模型生成的故事", entry.Story)
	}

	// Prompts were issued strictly year→month→day→hour.
	require.Len(t, p.prompts, 4)
	assert.Contains(t, p.prompts[0], "年柱")
	assert.Contains(t, p.prompts[1], "月柱")
	assert.Contains(t, p.prompts[2], "日柱")
	assert.Contains(t, p.prompts[3], "時柱")
	assert.Contains(t, p.prompts[0], "阿虹")
	assert.Contains(t, p.prompts[0], "天乙貴人")
}

func TestRemoteGeneratorRespectsContextDuringDelay(t *testing.T) {
	p := &recordingProvider{reply: "story"}
	g := NewRemoteGenerator(p, nil, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := g.GenerateReport(ctx, testChart(), testNaYin(), nil, bazi.ToneDefault, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildStoryPromptStructure(t *testing.T) {
	prompt := BuildStoryPrompt(Request{
		Position: bazi.PositionMonth,
		Pillar:   bazi.Pillar{Gan: "辛", Zhi: "巳", Pillar: "辛巳"},
		NaYin:    "白鑞金",
		TenGod:   "偏官",
		Spirits:  []string{"驛馬"},
		Tone:     bazi.TonePoetic,
	})

	for _, want := range []string{"月柱", "辛巳", "白鑞金", "偏官", "驛馬", "詩意風格"} {
		assert.True(t, strings.Contains(prompt, want), "prompt missing %q", want)
	}
}

func TestNewGeneratorSelectsStrategy(t *testing.T) {
	assert.IsType(t, &LocalGenerator{}, NewGenerator("local", nil, nil, 0))
	assert.IsType(t, &LocalGenerator{}, NewGenerator("", nil, nil, 0))
	assert.IsType(t, &LocalGenerator{}, NewGenerator("remote", nil, nil, 0), "remote without a provider degrades to local")
	assert.IsType(t, &RemoteGenerator{}, NewGenerator("remote", failingProvider{}, nil, 0))
}
