package narrative

import (
	"fmt"
	"strings"

	"hongling-sanctuary-be/pkg/bazi"
	"hongling-sanctuary-be/pkg/bazi/spirits"
)

// SystemPersona is the system instruction for remote generation.
const SystemPersona = "你是虹靈御所的專業八字軍團敘事師，擅長將傳統八字轉化為生動的RPG軍團故事。"

// toneStyle describes the phrasing each tone should use inside prompts.
var toneStyle = map[bazi.Tone]string{
	bazi.ToneMilitary: "軍事風格，使用戰術、戰略、軍團等詞彙",
	bazi.ToneHealing:  "療癒風格，溫暖關懷，充滿正能量",
	bazi.TonePoetic:   "詩意風格，優美文字，富有意境",
	bazi.ToneMythic:   "神話風格，神秘莊嚴，充滿傳奇色彩",
	bazi.ToneDefault:  "平衡風格，專業而親切",
}

// ToneStyle returns the prompt style line for a tone, falling back to the
// default style for anything unrecognized.
func ToneStyle(tone bazi.Tone) string {
	if style, ok := toneStyle[tone]; ok {
		return style
	}
	return toneStyle[bazi.ToneDefault]
}

// BuildStoryPrompt renders the structured user prompt for one pillar.
func BuildStoryPrompt(req Request) string {
	commander := bazi.CommanderRole(req.Pillar.Gan)
	strategist := bazi.StrategistRole(req.Pillar.Zhi)
	tenGodDesc := bazi.TenGodReading(req.TenGod)

	spiritList := "無特殊神煞"
	if len(req.Spirits) > 0 {
		spiritList = strings.Join(req.Spirits, "、")
	}
	spiritEffects := make([]string, 0, len(req.Spirits))
	for _, name := range req.Spirits {
		spiritEffects = append(spiritEffects, spirits.Effect(name))
	}

	userLine := "這位朋友"
	if req.UserName != "" {
		userLine = req.UserName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "請為八字命盤中的%s柱生成一個150字的個性化軍團故事。\n\n", req.Position)
	b.WriteString("背景資訊：\n")
	fmt.Fprintf(&b, "- 用戶：%s\n", userLine)
	fmt.Fprintf(&b, "- 柱位：%s柱 (%s)\n", req.Position, bazi.PillarDomain(req.Position))
	fmt.Fprintf(&b, "- 干支：%s%s\n", req.Pillar.Gan, req.Pillar.Zhi)
	fmt.Fprintf(&b, "- 納音：%s\n", req.NaYin)
	fmt.Fprintf(&b, "- 十神：%s (%s)\n", req.TenGod, tenGodDesc)
	fmt.Fprintf(&b, "- 神煞：%s\n", spiritList)
	if len(spiritEffects) > 0 {
		fmt.Fprintf(&b, "- 神煞效果：%s\n", strings.Join(spiritEffects, "、"))
	}
	fmt.Fprintf(&b, "- 主將：%s (%s)\n", commander, req.Pillar.Gan)
	fmt.Fprintf(&b, "- 軍師：%s (%s)\n", strategist, req.Pillar.Zhi)
	fmt.Fprintf(&b, "- 語調：%s\n\n", ToneStyle(req.Tone))
	b.WriteString("要求：\n")
	b.WriteString("1. 嚴格控制在150字左右\n")
	b.WriteString("2. 使用軍團、主將、軍師的概念\n")
	b.WriteString("3. 融入納音、十神、神煞的特質\n")
	fmt.Fprintf(&b, "4. 體現%s的主題\n", bazi.PillarDomain(req.Position))
	fmt.Fprintf(&b, "5. 語調符合%s風格\n", req.Tone)
	b.WriteString("6. 結構：開場→主將介紹→軍師特質→神煞加持→十神優勢→兵法建議\n\n")
	b.WriteString("格式範例：\n")
	fmt.Fprintf(&b, "🛡️【%s柱軍團｜%s%s】\n\n", req.Position, req.Pillar.Gan, req.Pillar.Zhi)
	b.WriteString("[150字故事內容，包含上述所有元素]\n\n")
	b.WriteString("🔑 一句兵法建議：[針對性建議]")

	return b.String()
}
