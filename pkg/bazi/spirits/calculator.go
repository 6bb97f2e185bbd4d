package spirits

import "hongling-sanctuary-be/pkg/bazi"

// Lookup tables for the six computed marker rules. Each rule derives one or
// two target branches from the day stem, year stem/branch, or day pillar, then
// scans all four pillars for a branch match. A symbol missing from a table
// simply produces no match for that rule.

var tianyiMap = map[string][]string{
	"甲": {"丑", "未"}, "戊": {"丑", "未"}, "庚": {"丑", "未"},
	"乙": {"子", "申"}, "己": {"子", "申"},
	"丙": {"亥", "酉"}, "丁": {"亥", "酉"},
	"壬": {"卯", "巳"}, "癸": {"卯", "巳"},
}

var taohuaMap = map[string]string{
	"申": "酉", "子": "酉", "辰": "酉",
	"寅": "卯", "午": "卯", "戌": "卯",
	"巳": "午", "酉": "午", "丑": "午",
	"亥": "子", "卯": "子", "未": "子",
}

var yimaMap = map[string]string{
	"申": "寅", "子": "寅", "辰": "寅",
	"寅": "申", "午": "申", "戌": "申",
	"巳": "亥", "酉": "亥", "丑": "亥",
	"亥": "巳", "卯": "巳", "未": "巳",
}

var wenchangMap = map[string]string{
	"甲": "巳", "乙": "午", "丙": "申", "丁": "酉", "戊": "申",
	"己": "酉", "庚": "亥", "辛": "子", "壬": "寅", "癸": "卯",
}

var huagaiMap = map[string]string{
	"寅": "戌", "午": "戌", "戌": "戌",
	"申": "辰", "子": "辰", "辰": "辰",
	"巳": "丑", "酉": "丑", "丑": "丑",
	"亥": "未", "卯": "未", "未": "未",
}

// kongwangMap keys the day pillar to its pair of void branches, one entry per
// decade of the sexagenary cycle.
var kongwangMap = map[string][]string{
	"甲子": {"戌", "亥"}, "甲戌": {"申", "酉"}, "甲申": {"午", "未"}, "甲午": {"辰", "巳"},
	"甲辰": {"寅", "卯"}, "甲寅": {"子", "丑"}, "乙丑": {"戌", "亥"}, "乙亥": {"申", "酉"},
	"乙酉": {"午", "未"}, "乙未": {"辰", "巳"}, "乙巳": {"寅", "卯"}, "乙卯": {"子", "丑"},
	"丙寅": {"戌", "亥"}, "丙子": {"申", "酉"}, "丙戌": {"午", "未"}, "丙申": {"辰", "巳"},
	"丙午": {"寅", "卯"}, "丙辰": {"子", "丑"}, "丁卯": {"戌", "亥"}, "丁丑": {"申", "酉"},
	"丁亥": {"午", "未"}, "丁酉": {"辰", "巳"}, "丁未": {"寅", "卯"}, "丁巳": {"子", "丑"},
	"戊辰": {"戌", "亥"}, "戊寅": {"申", "酉"}, "戊子": {"午", "未"}, "戊戌": {"辰", "巳"},
	"戊申": {"寅", "卯"}, "戊午": {"子", "丑"}, "己巳": {"戌", "亥"}, "己卯": {"申", "酉"},
	"己丑": {"午", "未"}, "己亥": {"辰", "巳"}, "己酉": {"寅", "卯"}, "己未": {"子", "丑"},
	"庚午": {"戌", "亥"}, "庚辰": {"申", "酉"}, "庚寅": {"午", "未"}, "庚子": {"辰", "巳"},
	"庚戌": {"寅", "卯"}, "庚申": {"子", "丑"}, "辛未": {"戌", "亥"}, "辛巳": {"申", "酉"},
	"辛卯": {"午", "未"}, "辛丑": {"辰", "巳"}, "辛亥": {"寅", "卯"}, "辛酉": {"子", "丑"},
	"壬申": {"戌", "亥"}, "壬午": {"申", "酉"}, "壬辰": {"午", "未"}, "壬寅": {"辰", "巳"},
	"壬子": {"寅", "卯"}, "壬戌": {"子", "丑"}, "癸酉": {"戌", "亥"}, "癸未": {"申", "酉"},
	"癸巳": {"午", "未"}, "癸卯": {"辰", "巳"}, "癸丑": {"寅", "卯"}, "癸亥": {"子", "丑"},
}

// matchingPillars returns the positions whose branch is in targets, in
// canonical pillar order.
func matchingPillars(pillars map[bazi.Position]bazi.Pillar, targets ...string) []bazi.Position {
	var found []bazi.Position
	for _, pos := range bazi.Positions {
		p, ok := pillars[pos]
		if !ok {
			continue
		}
		for _, target := range targets {
			if p.Zhi == target {
				found = append(found, pos)
				break
			}
		}
	}
	return found
}

func calcTianyi(dayGan string, pillars map[bazi.Position]bazi.Pillar) (Spirit, bool) {
	targets, ok := tianyiMap[dayGan]
	if !ok {
		return Spirit{}, false
	}
	found := matchingPillars(pillars, targets...)
	if len(found) == 0 {
		return Spirit{}, false
	}
	return newSpirit("天乙貴人", found), true
}

func calcSingleTarget(name string, table map[string]string, key string, pillars map[bazi.Position]bazi.Pillar) (Spirit, bool) {
	target, ok := table[key]
	if !ok {
		return Spirit{}, false
	}
	found := matchingPillars(pillars, target)
	if len(found) == 0 {
		return Spirit{}, false
	}
	return newSpirit(name, found), true
}

func calcKongwang(dayPillar string, pillars map[bazi.Position]bazi.Pillar) (Spirit, bool) {
	targets, ok := kongwangMap[dayPillar]
	if !ok {
		return Spirit{}, false
	}
	found := matchingPillars(pillars, targets...)
	if len(found) == 0 {
		return Spirit{}, false
	}
	return newSpirit("空亡", found), true
}

// Sentinel is returned when no rule matches. Callers treat it as a valid,
// displayable result rather than an error.
func Sentinel() Spirit {
	return Spirit{
		Name:        "（本盤暫無核心神煞）",
		Effect:      "平穩發展",
		Description: "此命盤較為平穩，沒有特別突出的神煞影響。",
		Category:    CategoryNeutral,
		Pillars:     []bazi.Position{},
	}
}

// Calculate runs all six marker rules over a chart. The rules are independent;
// the slice order only affects display. The result is never empty: when no
// rule matches it holds exactly the sentinel marker.
func Calculate(chart bazi.Chart) []Spirit {
	pillars := chart.Pillars
	day, hasDay := pillars[bazi.PositionDay]
	year, hasYear := pillars[bazi.PositionYear]

	var found []Spirit
	appendIf := func(s Spirit, ok bool) {
		if ok {
			found = append(found, s)
		}
	}

	if hasDay {
		appendIf(calcTianyi(day.Gan, pillars))
	}
	if hasYear {
		appendIf(calcSingleTarget("桃花", taohuaMap, year.Zhi, pillars))
		appendIf(calcSingleTarget("驛馬", yimaMap, year.Zhi, pillars))
		appendIf(calcSingleTarget("文昌", wenchangMap, year.Gan, pillars))
		appendIf(calcSingleTarget("華蓋", huagaiMap, year.Zhi, pillars))
	}
	if hasDay {
		appendIf(calcKongwang(day.Gan+day.Zhi, pillars))
	}

	if len(found) == 0 {
		return []Spirit{Sentinel()}
	}
	return found
}

// Names returns just the marker names, for embedding into prompts and the
// analysis bundle.
func Names(list []Spirit) []string {
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.Name
	}
	return names
}
