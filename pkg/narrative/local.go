package narrative

import (
	"context"
	"fmt"
	"strings"

	"hongling-sanctuary-be/pkg/bazi"
)

// LocalGenerator renders stories from fixed templates. It is fully
// deterministic: identical input always yields byte-identical output, which
// also makes it the safe fallback for the remote strategy.
type LocalGenerator struct{}

var _ Generator = &LocalGenerator{}

func NewLocalGenerator() *LocalGenerator {
	return &LocalGenerator{}
}

// tonePrefix/toneSuffix flavor the template output per tone.
var tonePrefix = map[bazi.Tone]string{
	bazi.ToneMilitary: "將軍",
	bazi.ToneHealing:  "療癒師",
	bazi.TonePoetic:   "詩人",
	bazi.ToneMythic:   "神話使者",
	bazi.ToneDefault:  "守護者",
}

var toneSuffix = map[bazi.Tone]string{
	bazi.ToneMilitary: "，準備迎接人生戰場的挑戰！",
	bazi.ToneHealing:  "，用溫柔的力量撫慰世界。",
	bazi.TonePoetic:   "，如詩如畫般綻放生命之美。",
	bazi.ToneMythic:   "，承載著古老的神秘力量。",
	bazi.ToneDefault:  "，在人生道路上勇敢前行。",
}

func (g *LocalGenerator) GeneratePillar(_ context.Context, req Request) (string, error) {
	commander := bazi.CommanderRole(req.Pillar.Gan)
	strategist := bazi.StrategistRole(req.Pillar.Zhi)
	tenGodDesc := bazi.TenGodReading(req.TenGod)
	prefix := tonePrefix[bazi.NormalizeTone(string(req.Tone))]
	suffix := toneSuffix[bazi.NormalizeTone(string(req.Tone))]

	var b strings.Builder
	fmt.Fprintf(&b, "🛡️【%s柱軍團｜%s%s】\n\n", req.Position, req.Pillar.Gan, req.Pillar.Zhi)
	fmt.Fprintf(&b, "你正在召喚你的%s柱軍團，他們源自「%s」之地，掌管%s，象徵你在此生命領域的主題挑戰與能量場。\n\n",
		req.Position, req.NaYin, bazi.PillarDomain(req.Position))
	fmt.Fprintf(&b, "主將「%s%s」由%s領軍，展現你的核心性格與行動力，在此柱中扮演領導者角色。\n\n",
		commander, prefix, req.Pillar.Gan)
	fmt.Fprintf(&b, "軍師「%s」來自%s，擅長策略與支援，引導軍團方向，象徵你在此領域的智慧與應變。\n\n",
		strategist, req.Pillar.Zhi)
	if len(req.Spirits) > 0 {
		fmt.Fprintf(&b, "神煞兵符「%s」賦予你特殊能力，在此柱中展現獨特優勢。\n\n", strings.Join(req.Spirits, "、"))
	}
	if req.TenGod != "" {
		fmt.Fprintf(&b, "此柱的十神為「%s」，%s，為你提供核心優勢。\n\n", req.TenGod, tenGodDesc)
	}
	fmt.Fprintf(&b, "🔑 一句兵法建議：善用%s與%s的特質，發揮此柱的戰略優勢%s", commander, strategist, suffix)

	return b.String(), nil
}

func (g *LocalGenerator) GenerateReport(ctx context.Context, chart bazi.Chart, naYin map[bazi.Position]string, spiritNames []string, tone bazi.Tone, userName string) (bazi.NarrativeReport, error) {
	report := make(bazi.NarrativeReport, len(chart.Pillars))
	for _, pos := range bazi.Positions {
		pillar, ok := chart.Pillars[pos]
		if !ok {
			continue
		}
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
