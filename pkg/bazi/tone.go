package bazi

// Tone selects the narrative style for generated stories.
type Tone string

const (
	ToneDefault  Tone = "default"
	ToneMilitary Tone = "military"
	ToneHealing  Tone = "healing"
	TonePoetic   Tone = "poetic"
	ToneMythic   Tone = "mythic"
)

// NormalizeTone maps arbitrary input onto the supported tone set. Unrecognized
// values fall back to the default tone rather than erroring.
func NormalizeTone(s string) Tone {
	switch Tone(s) {
	case ToneMilitary, ToneHealing, TonePoetic, ToneMythic, ToneDefault:
		return Tone(s)
	default:
		return ToneDefault
	}
}
