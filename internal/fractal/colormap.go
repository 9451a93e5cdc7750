package fractal

import "math"

// Channel maxima for the HSB color space used throughout: hue is a degree on
// the color wheel, saturation and brightness are percentages.
const (
	maxHue        = 360.0
	maxSaturation = 100.0
	maxBrightness = 100.0
)

// HSB is a base color offset in hue/saturation/brightness space.
type HSB struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

// HSBA is one pixel of the output buffer: HSB channels plus alpha.
type HSBA struct {
	Hue        float64
	Saturation float64
	Brightness float64
	Alpha      float64
}

// ColorValue maps an evaluation result to a continuous color value.
//
// When EscapeColoring is set and the point never escaped, the value is 0 — a
// flat interior color. Otherwise the renormalized escape count
//
//	iterations − log(log|Z|) / log 2
//
// smooths the banding between integer iteration boundaries.
//
// The log-log term requires |Z| > 1; ApplyUpdate keeps the escape radius at 2
// or above, which guarantees that for every escaped point. A point that ran
// out of iterations with its orbit still inside the unit disk (possible when
// EscapeColoring is off) would make the term NaN, so the smoothing correction
// is skipped there and the plain iteration count is returned.
func ColorValue(res Result, cfg Config) float64 {
	if cfg.EscapeColoring && !res.Escaped {
		return 0
	}
	m := res.FinalZ.Modulus()
	if m <= 1 {
		return float64(res.Iterations)
	}
	return float64(res.Iterations) - math.Log(math.Log(m))/math.Ln2
}

// NormalizeHSB offsets each base channel by colorValue and wraps overflow.
//
// A summed channel strictly above its maximum (360 for hue, 100 for saturation
// and brightness) is remapped into [0, max) as a position on the cyclic scale;
// a sum at or below the maximum passes through unchanged. Negative sums also
// pass through — the wrap is deliberately one-sided and downstream consumers
// rely on that.
func NormalizeHSB(base HSB, colorValue float64) HSB {
	return HSB{
		Hue:        wrapChannel(base.Hue+colorValue, maxHue),
		Saturation: wrapChannel(base.Saturation+colorValue, maxSaturation),
		Brightness: wrapChannel(base.Brightness+colorValue, maxBrightness),
	}
}

func wrapChannel(v, max float64) float64 {
	if v > max {
		return math.Mod(v, max)
	}
	return v
}
