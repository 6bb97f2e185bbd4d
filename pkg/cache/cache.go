// Package cache memoizes full-analysis responses keyed by birth input and
// tone, replacing repeat upstream calls for the same question.
package cache

import (
	"context"
	"fmt"

	"hongling-sanctuary-be/pkg/bazi"
)

type AnalysisCache interface {
	Get(ctx context.Context, key string) (*bazi.Analysis, bool)
	Set(ctx context.Context, key string, analysis *bazi.Analysis)
}

// Key builds a deterministic cache key. Identical birth data with a
// different tone is a different entry.
func Key(input bazi.BirthInput, tone bazi.Tone) string {
	return fmt.Sprintf("analysis:%d-%02d-%02d-%02d-%02d:%s",
		input.Year, input.Month, input.Day, input.Hour, input.Minute, bazi.NormalizeTone(string(tone)))
}
