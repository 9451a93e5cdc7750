package fractal

import (
	"math"
	"testing"
)

func TestComplexAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Complex
		want Complex
	}{
		{"zeros", Complex{}, Complex{}, Complex{}},
		{"simple", Complex{Re: 1, Im: 2}, Complex{Re: 3, Im: 4}, Complex{Re: 4, Im: 6}},
		{"negative", Complex{Re: 1, Im: -2}, Complex{Re: -3, Im: 2}, Complex{Re: -2, Im: 0}},
		{"fractional", Complex{Re: 0.5, Im: 0.25}, Complex{Re: 0.25, Im: 0.5}, Complex{Re: 0.75, Im: 0.75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.want {
				t.Errorf("Add: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComplexMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Complex
		want Complex
	}{
		{"by zero", Complex{Re: 3, Im: 4}, Complex{}, Complex{}},
		{"by one", Complex{Re: 3, Im: 4}, Complex{Re: 1}, Complex{Re: 3, Im: 4}},
		{"i squared", Complex{Im: 1}, Complex{Im: 1}, Complex{Re: -1, Im: 0}},
		{"general", Complex{Re: 1, Im: 2}, Complex{Re: 3, Im: 4}, Complex{Re: -5, Im: 10}},
		{"conjugates", Complex{Re: 2, Im: 3}, Complex{Re: 2, Im: -3}, Complex{Re: 13, Im: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Mul(tt.b); got != tt.want {
				t.Errorf("Mul: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComplexModulus(t *testing.T) {
	tests := []struct {
		name   string
		a      Complex
		wantSq float64
	}{
		{"zero", Complex{}, 0},
		{"unit real", Complex{Re: 1}, 1},
		{"3-4-5", Complex{Re: 3, Im: 4}, 25},
		{"negative components", Complex{Re: -3, Im: -4}, 25},
		{"escape probe", Complex{Re: 10, Im: 10}, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ModulusSquared(); got != tt.wantSq {
				t.Errorf("ModulusSquared: got %g, want %g", got, tt.wantSq)
			}
			want := math.Sqrt(tt.wantSq)
			if got := tt.a.Modulus(); math.Abs(got-want) > 1e-12 {
				t.Errorf("Modulus: got %g, want %g", got, want)
			}
		})
	}
}
