// Package spirits detects the shensha markers of a four-pillar chart by
// matching its branches against stem/branch-derived lookup tables.
package spirits

import (
	"fmt"
	"strings"

	"hongling-sanctuary-be/pkg/bazi"
)

const (
	CategoryAuspicious = "吉神"
	CategoryRomance    = "桃花"
	CategoryMotion     = "動星"
	CategoryOminous    = "凶煞"
	CategoryNeutral    = "中性"
)

// Spirit is one detected marker together with its static description and the
// pillars it appears in.
type Spirit struct {
	Name        string          `json:"name"`
	Effect      string          `json:"effect"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Pillars     []bazi.Position `json:"pillars"`
}

type effect struct {
	effect      string
	description string
	category    string
}

// effects is the static catalogue of marker descriptions. Only six markers are
// currently computed; the rest are kept for charts enriched upstream.
var effects = map[string]effect{
	"天乙貴人": {"逢兇化吉、得貴相助", "命中有貴人相助，遇到困難時容易得到他人幫助，化險為夷。", CategoryAuspicious},
	"文昌":   {"學習能力、文采出眾", "聰明好學，文思敏捷，在學業和文字工作方面有特殊天賦。", CategoryAuspicious},
	"華蓋":   {"藝術天賦、獨特品味", "具有藝術天分和獨特審美，喜歡宗教、哲學等精神層面的事物。", CategoryAuspicious},
	"金輿":   {"財富運勢、物質豐富", "物質生活豐富，容易獲得財富和地位，享受優質的生活品質。", CategoryAuspicious},
	"祿神":   {"福祿雙全、事業順利", "事業運佳，容易獲得穩定的收入和社會地位。", CategoryAuspicious},
	"德秀":   {"品德高尚、才華出眾", "品格高尚，才華橫溢，容易受到他人尊敬和愛戴。", CategoryAuspicious},
	"桃花":   {"人緣魅力、社交順利", "人際關係良好，異性緣佳，社交能力強，容易受到他人喜愛。", CategoryRomance},
	"紅鸞":   {"姻緣美滿、感情順利", "感情運佳，容易遇到理想的伴侶，婚姻美滿。", CategoryRomance},
	"天喜":   {"喜事連連、心情愉悅", "生活中喜事較多，心情愉快，容易遇到值得慶祝的事情。", CategoryRomance},
	"驛馬":   {"奔波變動、機動力強", "生活變動較多，喜歡旅行和變化，適合需要流動性的工作。", CategoryMotion},
	"將星":   {"領導才能、統御能力", "具有領導天賦，能夠統領他人，適合管理和指揮工作。", CategoryMotion},
	"空亡":   {"變化無常、需要適應", "人生變化較大，需要學會適應變化，有時會感到空虛迷茫。", CategoryOminous},
	"羊刃":   {"行動力強、需要節制", "性格剛烈，行動力強，但需要學會控制情緒，避免衝動。", CategoryOminous},
	"沖煞":   {"衝突挑戰、突破機會", "生活中會遇到衝突和挑戰，但也是突破和成長的機會。", CategoryOminous},
	"劫煞":   {"破財風險、需要謹慎", "容易有破財的風險，需要謹慎理財，避免投機冒險。", CategoryOminous},
	"災煞":   {"意外風險、需要小心", "容易遇到意外事件，需要特別注意安全，謹慎行事。", CategoryOminous},
}

// Effect returns the one-line effect text for a marker name, degrading to the
// name itself when unrecognized.
func Effect(name string) string {
	if e, ok := effects[name]; ok {
		return e.effect
	}
	return name
}

func newSpirit(name string, pillars []bazi.Position) Spirit {
	e := effects[name]
	return Spirit{
		Name:        name,
		Effect:      e.effect,
		Description: e.description,
		Category:    e.category,
		Pillars:     pillars,
	}
}

// DisplayText renders the marker the way result pages list it.
func (s Spirit) DisplayText() string {
	if len(s.Pillars) == 0 {
		return fmt.Sprintf("%s：%s", s.Name, s.Effect)
	}
	names := make([]string, len(s.Pillars))
	for i, p := range s.Pillars {
		names[i] = string(p)
	}
	return fmt.Sprintf("%s (出現在%s柱)：%s", s.Name, strings.Join(names, "、"), s.Effect)
}
