package bazi

// nayinTable maps each sexagenary pillar to its 納音 melodic element.
// Consecutive pillars share one entry, thirty entries covering all sixty.
var nayinTable = map[string]string{
	"甲子": "海中金", "乙丑": "海中金",
	"丙寅": "爐中火", "丁卯": "爐中火",
	"戊辰": "大林木", "己巳": "大林木",
	"庚午": "路旁土", "辛未": "路旁土",
	"壬申": "劍鋒金", "癸酉": "劍鋒金",
	"甲戌": "山頭火", "乙亥": "山頭火",
	"丙子": "澗下水", "丁丑": "澗下水",
	"戊寅": "城頭土", "己卯": "城頭土",
	"庚辰": "白鑞金", "辛巳": "白鑞金",
	"壬午": "楊柳木", "癸未": "楊柳木",
	"甲申": "泉中水", "乙酉": "泉中水",
	"丙戌": "屋上土", "丁亥": "屋上土",
	"戊子": "霹靂火", "己丑": "霹靂火",
	"庚寅": "松柏木", "辛卯": "松柏木",
	"壬辰": "長流水", "癸巳": "長流水",
	"甲午": "沙中金", "乙未": "沙中金",
	"丙申": "山下火", "丁酉": "山下火",
	"戊戌": "平地木", "己亥": "平地木",
	"庚子": "壁上土", "辛丑": "壁上土",
	"壬寅": "金箔金", "癸卯": "金箔金",
	"甲辰": "覆燈火", "乙巳": "覆燈火",
	"丙午": "天河水", "丁未": "天河水",
	"戊申": "大驛土", "己酉": "大驛土",
	"庚戌": "釵釧金", "辛亥": "釵釧金",
	"壬子": "桑柘木", "癸丑": "桑柘木",
	"甲寅": "大溪水", "乙卯": "大溪水",
	"丙辰": "沙中土", "丁巳": "沙中土",
	"戊午": "天上火", "己未": "天上火",
	"庚申": "石榴木", "辛酉": "石榴木",
	"壬戌": "大海水", "癸亥": "大海水",
}

// NaYin returns the melodic element of a stem-branch pair, degrading to the
// pair itself when unrecognized.
func NaYin(gan, zhi string) string {
	if ny, ok := nayinTable[gan+zhi]; ok {
		return ny
	}
	return gan + zhi
}
