package bazi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaYinCoversAllSixtyPillars(t *testing.T) {
	for i := 0; i < 60; i++ {
		gan := Stems[i%10]
		zhi := Branches[i%12]
		ny := NaYin(gan, zhi)
		assert.NotEmpty(t, ny)
		assert.NotEqual(t, gan+zhi, ny, "pillar %s%s should have a melodic element, not the degraded label", gan, zhi)
	}
}

func TestNaYinKnownPillars(t *testing.T) {
	assert.Equal(t, "路旁土", NaYin("庚", "午"))
	assert.Equal(t, "白鑞金", NaYin("辛", "巳"))
	assert.Equal(t, "海中金", NaYin("甲", "子"))
	assert.Equal(t, "天河水", NaYin("丙", "午"))
}

func TestNaYinPillarPairsShareOneElement(t *testing.T) {
	assert.Equal(t, NaYin("甲", "子"), NaYin("乙", "丑"))
	assert.Equal(t, NaYin("壬", "戌"), NaYin("癸", "亥"))
}

func TestNaYinDegradesToPair(t *testing.T) {
	// 甲丑 is not a valid sexagenary combination
	assert.Equal(t, "甲丑", NaYin("甲", "丑"))
}
