package bazi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommanderRoleCoversAllStems(t *testing.T) {
	for _, stem := range Stems {
		role := CommanderRole(stem)
		assert.NotEmpty(t, role, "stem %s must map to a role", stem)
		assert.NotEqual(t, stem, role, "stem %s should have a real role, not the degraded label", stem)
	}
}

func TestStrategistRoleCoversAllBranches(t *testing.T) {
	for _, branch := range Branches {
		role := StrategistRole(branch)
		assert.NotEmpty(t, role, "branch %s must map to a role", branch)
		assert.NotEqual(t, branch, role)
	}
}

func TestRoleLookupDegradesToSymbol(t *testing.T) {
	assert.Equal(t, "樹", CommanderRole("樹"))
	assert.Equal(t, "貓", StrategistRole("貓"))
	assert.Equal(t, "未知神", TenGodReading("未知神"))
}

func TestTenGodReadingCoversCatalogue(t *testing.T) {
	for _, tg := range []string{"比肩", "劫財", "食神", "傷官", "偏印", "正印", "偏財", "正財", "七殺", "正官"} {
		assert.NotEqual(t, tg, TenGodReading(tg), "ten god %s should have a reading", tg)
	}
}

func TestDeriveCounts(t *testing.T) {
	pillars := map[Position]Pillar{
		PositionYear:  {Gan: "庚", Zhi: "午", Pillar: "庚午"},
		PositionMonth: {Gan: "辛", Zhi: "巳", Pillar: "辛巳"},
		PositionDay:   {Gan: "甲", Zhi: "子", Pillar: "甲子"},
		PositionHour:  {Gan: "丙", Zhi: "午", Pillar: "丙午"},
	}

	elements, yinYang := DeriveCounts(pillars)

	total := 0
	for _, elem := range []string{"金", "木", "水", "火", "土"} {
		total += elements[elem]
	}
	assert.Greater(t, total, 0)
	assert.Equal(t, 8, yinYang["陰"]+yinYang["陽"], "all eight symbols carry a polarity")
}

func TestDeriveCountsIgnoresUnknownSymbols(t *testing.T) {
	pillars := map[Position]Pillar{
		PositionDay: {Gan: "??", Zhi: "!!", Pillar: "??!!"},
	}
	elements, yinYang := DeriveCounts(pillars)
	for _, count := range elements {
		assert.Zero(t, count)
	}
	assert.Zero(t, yinYang["陰"]+yinYang["陽"])
}

func TestNormalizeTone(t *testing.T) {
	tests := []struct {
		in   string
		want Tone
	}{
		{"military", ToneMilitary},
		{"healing", ToneHealing},
		{"poetic", TonePoetic},
		{"mythic", ToneMythic},
		{"default", ToneDefault},
		{"savage", ToneDefault},
		{"", ToneDefault},
		{"MILITARY", ToneDefault},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTone(tt.in), "input %q", tt.in)
	}
}
