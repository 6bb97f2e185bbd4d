package apiclient

import (
	"fmt"

	"hongling-sanctuary-be/pkg/bazi"
)

type demoStyle struct {
	prefix string
	suffix string
}

var demoStyles = map[bazi.Tone]demoStyle{
	bazi.ToneMilitary: {prefix: "將軍", suffix: "，準備迎接人生戰場的挑戰！"},
	bazi.ToneHealing:  {prefix: "療癒師", suffix: "，用溫柔的力量撫慰世界。"},
	bazi.TonePoetic:   {prefix: "詩人", suffix: "，如詩如畫般綻放生命之美。"},
	bazi.ToneMythic:   {prefix: "神話使者", suffix: "，承載著古老的神秘力量。"},
	bazi.ToneDefault:  {prefix: "守護者", suffix: "，在人生道路上勇敢前行。"},
}

// DemoAnalysis returns the canned 庚午/辛巳/甲子/丙午 analysis used when the
// upstream calculator is unreachable. The stories are flavored by tone so
// the degraded experience still matches what the user asked for.
func DemoAnalysis(input bazi.BirthInput, tone bazi.Tone) *bazi.Analysis {
	style, ok := demoStyles[bazi.NormalizeTone(string(tone))]
	if !ok {
		style = demoStyles[bazi.ToneDefault]
	}

	return &bazi.Analysis{
		Chart: bazi.Chart{
			Pillars: map[bazi.Position]bazi.Pillar{
				bazi.PositionYear:  {Pillar: "庚午", Gan: "庚", Zhi: "午"},
				bazi.PositionMonth: {Pillar: "辛巳", Gan: "辛", Zhi: "巳"},
				bazi.PositionDay:   {Pillar: "甲子", Gan: "甲", Zhi: "子"},
				bazi.PositionHour:  {Pillar: "丙午", Gan: "丙", Zhi: "午"},
			},
			FiveElements: map[string]int{"金": 2, "木": 1, "水": 1, "火": 3, "土": 1},
			YinYang:      map[string]int{"陰": 3, "陽": 5},
		},
		Narrative: bazi.NarrativeReport{
			bazi.PositionYear: {
				Commander:  "金馬" + style.prefix,
				Strategist: "堅韌軍師",
				NaYin:      "路旁土",
				Story:      fmt.Sprintf("出生於%d年的你，如金馬奔騰般充滿勇氣與決心。年柱金馬%s代表你的根基扎實穩固，無論面對什麼人生挑戰都能勇敢前行。你的性格中蘊含著金屬般的堅韌不拔，如同戰馬般勇往直前，永不退縮。這份天生的領導氣質將伴隨你一生，成為你最珍貴的財富%s", input.Year, style.prefix, style.suffix),
			},
			bazi.PositionMonth: {
				Commander:  "金蛇" + style.prefix,
				Strategist: "智慧導師",
				NaYin:      "白鑞金",
				Story:      fmt.Sprintf("青春時期的金蛇%s賦予你敏銳的洞察力和超凡的智慧。你善於在複雜的情況中找到最佳的解決方案，智慧如蛇般靈活多變。這個階段的你學會了如何在人際關係中游刃有餘，既能保持自己的原則，又能適應環境的變化。你的思維敏捷，總能在關鍵時刻做出正確的判斷%s", style.prefix, style.suffix),
			},
			bazi.PositionDay: {
				Commander:  "木鼠" + style.prefix,
				Strategist: "機智先鋒",
				NaYin:      "海中金",
				Story:      fmt.Sprintf("你的核心本質如機智的木鼠，外表溫和謙遜但內心充滿無限活力。日柱木鼠%s象徵你的適應能力極強，能在任何環境中茁壯成長。你擁有敏銳的商業嗅覺和創新思維，總能發現別人忽略的機會。這份天賦讓你在人生的各個階段都能找到屬於自己的道路，創造出獨特的價值%s", style.prefix, style.suffix),
			},
			bazi.PositionHour: {
				Commander:  "火馬" + style.prefix,
				Strategist: "熱情戰士",
				NaYin:      "天河水",
				Story:      fmt.Sprintf("晚年的火馬%s讓你永遠保持青春的熱情和活力，對生活充滿好奇心和冒險精神。你是天生的領導者，能夠激勵身邊的人追求更高的目標。即使歲月流逝，你的內心依然燃燒著不滅的火焰，這份熱情將成為你人生最後階段的最大財富。你的智慧和經驗將如天河之水般源源不絕，滋養著後代%s", style.prefix, style.suffix),
			},
		},
	}
}
