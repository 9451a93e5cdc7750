package fractal

import (
	"math"
	"testing"
)

func TestBuildField_EdgeExactness(t *testing.T) {
	window := Window{XMin: -2.5, XMax: 1.5, YMin: -1.25, YMax: 1.25}
	f := BuildField(64, 48, window, VariantStandard)

	// Column 0 must hit XMin exactly, row 0 must hit YMin exactly, with no
	// floating point slack: the interpolation starts from the corner.
	for j := 0; j < f.Height; j++ {
		if got := f.At(0, j).Re; got != window.XMin {
			t.Fatalf("At(0,%d).Re: got %g, want exactly %g", j, got, window.XMin)
		}
	}
	for i := 0; i < f.Width; i++ {
		if got := f.At(i, 0).Im; got != window.YMin {
			t.Fatalf("At(%d,0).Im: got %g, want exactly %g", i, got, window.YMin)
		}
	}

	// No sample reaches the far edges.
	for j := 0; j < f.Height; j++ {
		if got := f.At(f.Width-1, j).Re; got >= window.XMax {
			t.Errorf("At(%d,%d).Re = %g reaches XMax %g", f.Width-1, j, got, window.XMax)
		}
	}
}

func TestBuildField_Interpolation(t *testing.T) {
	window := Window{XMin: 0, XMax: 4, YMin: 0, YMax: 2}
	f := BuildField(4, 2, window, VariantStandard)

	tests := []struct {
		i, j   int
		wantRe float64
		wantIm float64
	}{
		{0, 0, 0, 0},
		{1, 0, 1, 0},
		{3, 0, 3, 0},
		{0, 1, 0, 1},
		{2, 1, 2, 1},
	}

	for _, tt := range tests {
		got := f.At(tt.i, tt.j)
		if math.Abs(got.Re-tt.wantRe) > 1e-12 || math.Abs(got.Im-tt.wantIm) > 1e-12 {
			t.Errorf("At(%d,%d): got %+v, want (%g, %g)", tt.i, tt.j, got, tt.wantRe, tt.wantIm)
		}
	}
}

func TestBuildField_RowMajorLayout(t *testing.T) {
	f := BuildField(3, 2, Window{XMin: 0, XMax: 3, YMin: 0, YMax: 2}, VariantStandard)

	if f.Len() != 6 {
		t.Fatalf("Len: got %d, want 6", f.Len())
	}
	// Adjacent samples in a row step in Re; rows step in Im.
	if f.At(1, 0).Re <= f.At(0, 0).Re {
		t.Error("samples within a row do not advance in Re")
	}
	if f.At(0, 1).Im <= f.At(0, 0).Im {
		t.Error("rows do not advance in Im")
	}
}

func TestBuildField_EmptyDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := BuildField(tt.width, tt.height, DefaultWindow, VariantStandard)
			if f.Len() != 0 {
				t.Errorf("Len: got %d, want 0", f.Len())
			}
		})
	}
}

func TestFieldMatches(t *testing.T) {
	window := Window{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	f := BuildField(8, 8, window, VariantStandard)

	if !f.matches(window, VariantStandard) {
		t.Error("field does not match its own generating parameters")
	}
	if f.matches(Window{XMin: -2, XMax: 1, YMin: -1, YMax: 1}, VariantStandard) {
		t.Error("field matches a different window")
	}
	if f.matches(window, VariantParameterized) {
		t.Error("field matches a different variant")
	}

	var nilField *Field
	if nilField.matches(window, VariantStandard) {
		t.Error("nil field reported a match")
	}
}
