package bazi

// Position identifies one of the four pillars of a chart.
type Position string

const (
	PositionYear  Position = "年"
	PositionMonth Position = "月"
	PositionDay   Position = "日"
	PositionHour  Position = "時"
)

// Positions lists the pillars in their canonical order. Batch operations
// (narrative generation, rendering) walk this slice so year always comes first.
var Positions = []Position{PositionYear, PositionMonth, PositionDay, PositionHour}

// Pillar is one stem/branch pair of the sexagenary cycle.
type Pillar struct {
	Gan    string `json:"gan"`
	Zhi    string `json:"zhi"`
	Pillar string `json:"pillar"` // combined label, e.g. "甲子"
}

// Chart is a computed four-pillar chart.
type Chart struct {
	Pillars      map[Position]Pillar `json:"pillars"`
	FiveElements map[string]int      `json:"fiveElements"`
	YinYang      map[string]int      `json:"yinYang"`
	TenGods      []string            `json:"tenGods,omitempty"`
}

// BirthInput is the raw user-supplied birth data. Values are validated for
// presence only; calendrical validity is the upstream calculator's problem.
type BirthInput struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute,omitempty"`
	ZMode    string `json:"zMode,omitempty"`
	UserName string `json:"userName,omitempty"`
}

// NarrativeEntry is the generated story block for a single pillar.
type NarrativeEntry struct {
	Commander  string `json:"commander"`
	Strategist string `json:"strategist"`
	NaYin      string `json:"naYin"`
	Story      string `json:"story"`
	TenGod     string `json:"tenGod,omitempty"`
}

// NarrativeReport maps pillar positions to their narrative entries. Its keys
// are always a subset of the parent chart's pillar keys.
type NarrativeReport map[Position]NarrativeEntry

// Analysis is the full chart + narrative bundle returned to the client.
type Analysis struct {
	Chart     Chart           `json:"chart"`
	Narrative NarrativeReport `json:"narrative"`
	Spirits   []string        `json:"spirits,omitempty"`
}
