package cache

import (
	"context"
	"testing"
	"time"

	"hongling-sanctuary-be/pkg/bazi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIsDeterministic(t *testing.T) {
	input := bazi.BirthInput{Year: 1984, Month: 10, Day: 6, Hour: 20}

	assert.Equal(t, Key(input, bazi.ToneDefault), Key(input, bazi.ToneDefault))
	assert.NotEqual(t, Key(input, bazi.ToneMilitary), Key(input, bazi.TonePoetic))

	other := input
	other.Day = 7
	assert.NotEqual(t, Key(input, bazi.ToneDefault), Key(other, bazi.ToneDefault))
}

func TestKeyNormalizesUnknownTone(t *testing.T) {
	input := bazi.BirthInput{Year: 1984, Month: 10, Day: 6, Hour: 20}
	assert.Equal(t, Key(input, bazi.ToneDefault), Key(input, bazi.Tone("savage")))
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()
	input := bazi.BirthInput{Year: 1990, Month: 1, Day: 1, Hour: 0}
	key := Key(input, bazi.ToneHealing)

	_, found := c.Get(ctx, key)
	assert.False(t, found)

	analysis := &bazi.Analysis{
		Chart: bazi.Chart{
			Pillars: map[bazi.Position]bazi.Pillar{
				bazi.PositionYear: {Gan: "庚", Zhi: "午", Pillar: "庚午"},
			},
		},
	}
	c.Set(ctx, key, analysis)

	got, found := c.Get(ctx, key)
	require.True(t, found)
	assert.Equal(t, "庚午", got.Chart.Pillars[bazi.PositionYear].Pillar)
}
