package fractal

import (
	"encoding/json"
	"fmt"
)

// VariantKind selects which quadratic recurrence the evaluator runs.
type VariantKind int

const (
	// VariantStandard is the classic Mandelbrot recurrence: the sample is both
	// the initial value and the additive constant.
	VariantStandard VariantKind = iota

	// VariantParameterized is the Julia-style recurrence: the sample is the
	// initial value and a fixed external constant is added each step.
	VariantParameterized
)

// String returns the wire name of the variant ("standard" or "parameterized").
func (k VariantKind) String() string {
	if k == VariantParameterized {
		return "parameterized"
	}
	return "standard"
}

// MarshalJSON encodes the variant kind as its wire name.
func (k VariantKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a variant kind from its wire name.
func (k *VariantKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "standard":
		*k = VariantStandard
	case "parameterized":
		*k = VariantParameterized
	default:
		return fmt.Errorf("unknown variant: %s", name)
	}
	return nil
}

// Variant is the tagged fractal variant: the kind plus, for the parameterized
// kind, the fixed constant C. The constant is ignored for VariantStandard.
type Variant struct {
	Kind     VariantKind `json:"kind"`
	Constant Complex     `json:"constant"`
}

// Result is the outcome of evaluating one complex sample.
type Result struct {
	// Iterations is the number of recurrence steps performed, in [1, MaxIterations].
	Iterations int `json:"iterations"`

	// FinalZ is the orbit value at termination. For escaped points its modulus
	// is at least the escape radius; the color mapper feeds it into the
	// continuous coloring formula.
	FinalZ Complex `json:"final_z"`

	// Escaped is true when the orbit exceeded the escape radius, false when
	// the iteration budget ran out (the point is treated as interior).
	Escaped bool `json:"escaped"`
}

// Evaluate runs the escape-time recurrence for a single sample.
//
// Z starts at the sample. The constant C is the sample itself for the standard
// variant or the configured constant for the parameterized one. Each step
// computes Z ← Z·Z + C and stops as soon as |Z|² reaches the squared escape
// radius or the iteration budget is exhausted.
//
// Evaluate is pure: it reads only its arguments and shares no state between
// invocations, so it may be called concurrently for every pixel. Cost is
// O(MaxIterations) worst case per sample, which makes it the dominant cost of
// a render.
func Evaluate(sample Complex, cfg Config) Result {
	c := sample
	if cfg.Variant.Kind == VariantParameterized {
		c = cfg.Variant.Constant
	}

	limit := cfg.EscapeRadius * cfg.EscapeRadius
	z := sample
	iters := 0
	escaped := false

	for iters < cfg.MaxIterations {
		z = z.Mul(z).Add(c)
		iters++
		if z.ModulusSquared() >= limit {
			escaped = true
			break
		}
	}

	return Result{Iterations: iters, FinalZ: z, Escaped: escaped}
}
