package bazi

// Static role and attribute tables for the ten heavenly stems and twelve
// earthly branches. Loaded once, never mutated.

var Stems = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var Branches = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// ganRole maps each stem to its commander title.
var ganRole = map[string]string{
	"甲": "森林將軍", "乙": "花草軍師", "丙": "烈日戰神", "丁": "燭光法師", "戊": "山嶽守護",
	"己": "大地母親", "庚": "鋼鐵騎士", "辛": "珠寶商人", "壬": "江河船長", "癸": "甘露天使",
}

// zhiRole maps each branch to its strategist title.
var zhiRole = map[string]string{
	"子": "夜行刺客", "丑": "忠犬守衛", "寅": "森林獵人", "卯": "春兔使者", "辰": "龍族法師", "巳": "火蛇術士",
	"午": "烈馬騎兵", "未": "溫羊牧者", "申": "靈猴戰士", "酉": "金雞衛士", "戌": "戰犬統領", "亥": "海豚智者",
}

// tenGodNarrative maps each ten-god label to its one-line reading.
var tenGodNarrative = map[string]string{
	"比肩": "自我推進、競爭力強", "劫財": "資源分享、合作亦競合", "食神": "創造表達、福氣延展", "傷官": "突破框架、表現慾強",
	"偏印": "靈感學習、支援多", "正印": "庇蔭資源、學習成長", "偏財": "機會財、外部資源", "正財": "穩健財、務實經營",
	"七殺": "行動果決、承壓挑戰", "正官": "紀律責任、制度資源",
}

var stemElement = map[string]string{
	"甲": "木", "乙": "木", "丙": "火", "丁": "火", "戊": "土",
	"己": "土", "庚": "金", "辛": "金", "壬": "水", "癸": "水",
}

var branchElement = map[string]string{
	"寅": "木", "卯": "木", "巳": "火", "午": "火",
	"申": "金", "酉": "金", "亥": "水", "子": "水",
	"辰": "土", "戌": "土", "丑": "土", "未": "土",
}

var stemYang = map[string]bool{
	"甲": true, "丙": true, "戊": true, "庚": true, "壬": true,
	"乙": false, "丁": false, "己": false, "辛": false, "癸": false,
}

var branchYang = map[string]bool{
	"子": true, "寅": true, "辰": true, "午": true, "申": true, "戌": true,
	"丑": false, "卯": false, "巳": false, "未": false, "酉": false, "亥": false,
}

// pillarDomain describes the life domain each pillar position governs.
var pillarDomain = map[Position]string{
	PositionYear:  "家族脈絡與社會舞台",
	PositionMonth: "成長歷程與關係資源",
	PositionDay:   "核心本質與自我認知",
	PositionHour:  "未來願景與成果呈現",
}

// CommanderRole returns the commander title for a stem. An unrecognized
// symbol degrades to the symbol itself so lookups never dead-end.
func CommanderRole(gan string) string {
	if role, ok := ganRole[gan]; ok {
		return role
	}
	return gan
}

// StrategistRole returns the strategist title for a branch, degrading to the
// symbol itself when unrecognized.
func StrategistRole(zhi string) string {
	if role, ok := zhiRole[zhi]; ok {
		return role
	}
	return zhi
}

// TenGodReading returns the narrative line for a ten-god label, degrading to
// the label itself when unrecognized.
func TenGodReading(tenGod string) string {
	if desc, ok := tenGodNarrative[tenGod]; ok {
		return desc
	}
	return tenGod
}

// PillarDomain returns the life-domain description of a pillar position.
func PillarDomain(pos Position) string {
	if d, ok := pillarDomain[pos]; ok {
		return d
	}
	return "人生階段"
}

// DeriveCounts rebuilds five-element and yin/yang counts from pillar symbols.
// Used when the upstream calculator returns pillars without count data. The
// 0.4 stem / 0.6 branch weighting mirrors the legacy scoring path; treat it
// as a placeholder until the chart provider confirms the real weights.
func DeriveCounts(pillars map[Position]Pillar) (map[string]int, map[string]int) {
	weighted := map[string]float64{"金": 0, "木": 0, "水": 0, "火": 0, "土": 0}
	yinYang := map[string]int{"陰": 0, "陽": 0}

	for _, p := range pillars {
		if elem, ok := stemElement[p.Gan]; ok {
			weighted[elem] += 0.4 * 2
		}
		if elem, ok := branchElement[p.Zhi]; ok {
			weighted[elem] += 0.6 * 2
		}
		if yang, ok := stemYang[p.Gan]; ok {
			if yang {
				yinYang["陽"]++
			} else {
				yinYang["陰"]++
			}
		}
		if yang, ok := branchYang[p.Zhi]; ok {
			if yang {
				yinYang["陽"]++
			} else {
				yinYang["陰"]++
			}
		}
	}

	elements := make(map[string]int, len(weighted))
	for elem, score := range weighted {
		elements[elem] = int(score + 0.5)
	}
	return elements, yinYang
}
