// Package synth derives stable attributes for tracts and stores that lack
// curated data. Everything here is a pure function of its inputs: the same
// key always yields the same values, with no stored state and no randomness.
package synth

import (
	"math"
	"strconv"
)

// Risk bands map the 0-99 mix value onto contiguous linear segments. The
// band boundaries and output range are fixed contract values pinned by tests.
var riskBands = []struct {
	hiMix  int
	lo, hi float64
}{
	{20, 0.15, 0.30},
	{55, 0.30, 0.50},
	{85, 0.50, 0.70},
	{100, 0.70, 0.88},
}

// Risk returns a deterministic risk value in [0.15, 0.88) for a business key.
func Risk(key string) float64 {
	return riskForMix(mixFor(keySeed(key)))
}

// keySeed takes the last 5 digits of the key as an integer. Keys without
// digits seed as zero.
func keySeed(key string) int {
	digits := make([]byte, 0, 5)
	for i := 0; i < len(key); i++ {
		if key[i] >= '0' && key[i] <= '9' {
			digits = append(digits, key[i])
		}
	}
	if len(digits) > 5 {
		digits = digits[len(digits)-5:]
	}
	n, _ := strconv.Atoi(string(digits))
	return n
}

func mixFor(n int) int {
	return (n*1619 + 37*(n%97) + 11) % 100
}

func riskForMix(mix int) float64 {
	loMix := 0
	for _, b := range riskBands {
		if mix < b.hiMix {
			t := float64(mix-loMix) / float64(b.hiMix-loMix)
			return b.lo + t*(b.hi-b.lo)
		}
		loMix = b.hiMix
	}
	return riskBands[len(riskBands)-1].hi
}

// Metrics are the dependent tract metrics derived from a synthesized risk
// value. Each is an affine function of risk rounded to 2 decimals, so higher
// risk always means lower equity and lower supply.
type Metrics struct {
	Equity        float64
	Coverage      float64
	Insecurity    float64
	Poverty       float64
	SnapRate      float64
	Vulnerability float64
	Need          float64
	Supply        float64
}

// Derive computes internally consistent metrics for a risk value.
func Derive(risk float64) Metrics {
	return Metrics{
		Equity:        round2(clamp01(0.95 - 0.80*risk)),
		Coverage:      round2(clamp01(0.90 - 0.70*risk)),
		Insecurity:    round2(clamp01(0.08 + 0.80*risk)),
		Poverty:       round2(clamp01(0.05 + 0.60*risk)),
		SnapRate:      round2(clamp01(0.05 + 0.55*risk)),
		Vulnerability: round2(clamp01(0.10 + 0.75*risk)),
		Need:          round2(clamp01(0.05 + 0.85*risk)),
		Supply:        round2(clamp01(0.95 - 0.85*risk)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
