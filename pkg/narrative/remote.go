package narrative

import (
	"context"
	"fmt"
	"time"

	"hongling-sanctuary-be/internal/pkg/logger"
	"hongling-sanctuary-be/pkg/bazi"
	"hongling-sanctuary-be/pkg/llm"
)

// RemoteGenerator delegates story text to an LLM provider. Any failure
// (network error, non-success status, malformed body) falls through to the
// local templates; the caller never sees a remote error.
type RemoteGenerator struct {
	provider llm.LLMProvider
	fallback *LocalGenerator
	logger   logger.ILogger

	// Delay inserted between pillar requests during batch generation, so four
	// back-to-back calls stay under the provider's rate limit.
	RequestDelay time.Duration
}

var _ Generator = &RemoteGenerator{}

func NewRemoteGenerator(provider llm.LLMProvider, log logger.ILogger, requestDelay time.Duration) *RemoteGenerator {
	return &RemoteGenerator{
		provider:     provider,
		fallback:     NewLocalGenerator(),
		logger:       log,
		RequestDelay: requestDelay,
	}
}

func (g *RemoteGenerator) GeneratePillar(ctx context.Context, req Request) (string, error) {
	history := []llm.Message{
		{Role: "system", Content: SystemPersona},
		{Role: "user", Content: BuildStoryPrompt(req)},
	}

	story, err := g.provider.Chat(ctx, history, llm.WithMaxTokens(300), llm.WithTemperature(0.7))
	if err != nil || story == "" {
		if g.logger != nil {
			g.logger.Warn("narrative", "remote generation failed, using local template", map[string]interface{}{
				"position": string(req.Position),
				"error":    fmt.Sprint(err),
			})
		}
		return g.fallback.GeneratePillar(ctx, req)
	}
	return story, nil
}

// GenerateReport walks the pillars strictly in year, month, day, hour order,
// waiting RequestDelay between remote calls.
func (g *RemoteGenerator) GenerateReport(ctx context.Context, chart bazi.Chart, naYin map[bazi.Position]string, spiritNames []string, tone bazi.Tone, userName string) (bazi.NarrativeReport, error) {
	report := make(bazi.NarrativeReport, len(chart.Pillars))
	first := true
	for _, pos := range bazi.Positions {
		pillar, ok := chart.Pillars[pos]
		if !ok {
			continue
		}
		if !first && g.RequestDelay > 0 {
			select {
			case <-time.After(g.RequestDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		first = false

		req := Request{
			Position: pos,
			Pillar:   pillar,
			NaYin:    naYinFor(naYin, pos, pillar),
			TenGod:   tenGodFor(chart, pos),
			Spirits:  spiritNames,
			Tone:     tone,
			UserName: userName,
		}
		story, err := g.GeneratePillar(ctx, req)
		if err != nil {
			return nil, err
		}
		report[pos] = buildEntry(pillar, req.NaYin, req.TenGod, story)
	}
	return report, nil
}
