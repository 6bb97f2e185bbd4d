// Package narrative builds the per-pillar guardian-legion stories shown on
// result pages. Two strategies implement the same contract: a remote one that
// delegates to a text-generation model and an offline template one. The remote
// strategy never surfaces model failures; it silently falls back to templates.
package narrative

import (
	"context"

	"hongling-sanctuary-be/pkg/bazi"
)

// Request carries everything a generator needs for one pillar's story.
type Request struct {
	Position bazi.Position
	Pillar   bazi.Pillar
	NaYin    string
	TenGod   string
	Spirits  []string // marker names present on this pillar
	Tone     bazi.Tone
	UserName string
}

// Generator produces narrative story text for chart pillars.
type Generator interface {
	// GeneratePillar returns the story for a single pillar.
	GeneratePillar(ctx context.Context, req Request) (string, error)

	// GenerateReport builds the full report for a chart, one entry per pillar
	// present, strictly in year, month, day, hour order.
	GenerateReport(ctx context.Context, chart bazi.Chart, naYin map[bazi.Position]string, spirits []string, tone bazi.Tone, userName string) (bazi.NarrativeReport, error)
}

// buildEntry assembles the non-story fields every strategy shares.
func buildEntry(pillar bazi.Pillar, naYin, tenGod, story string) bazi.NarrativeEntry {
	return bazi.NarrativeEntry{
		Commander:  bazi.CommanderRole(pillar.Gan),
		Strategist: bazi.StrategistRole(pillar.Zhi),
		NaYin:      naYin,
		Story:      story,
		TenGod:     tenGod,
	}
}

// naYinFor prefers the caller-supplied per-pillar value and derives from the
// sexagenary table when none was given, so entries never carry an empty 納音.
func naYinFor(naYin map[bazi.Position]string, pos bazi.Position, pillar bazi.Pillar) string {
	if v := naYin[pos]; v != "" {
		return v
	}
	return bazi.NaYin(pillar.Gan, pillar.Zhi)
}

// tenGodFor pairs the chart's ordered ten-god list with pillar positions.
func tenGodFor(chart bazi.Chart, pos bazi.Position) string {
	for i, p := range bazi.Positions {
		if p == pos && i < len(chart.TenGods) {
			return chart.TenGods[i]
		}
	}
	return ""
}
