package fractal

// Window is a rectangular region of the complex plane. It describes which part
// of the plane is sampled (zoom and pan); it owns no pixels.
type Window struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// Field is a width × height grid of complex samples in row-major order, one per
// pixel, derived from a Window by linear interpolation.
//
// A Field records the parameters it was built from so the renderer can decide
// whether a configuration change invalidates it. Fields are built once per
// window/variant change and reused across renders.
type Field struct {
	Width   int
	Height  int
	Window  Window
	Variant VariantKind

	samples []Complex
}

// BuildField samples window onto a width × height pixel grid.
//
// Pixel coordinate i is interpolated from [0, width) onto [window.XMin,
// window.XMax], so i=0 yields exactly XMin and no sample lands on the right
// edge XMax; j maps likewise onto [YMin, YMax]. Zero width or height yields an
// empty field, not an error.
//
// The variant tag is recorded for staleness checks only; sample values depend
// solely on the window and grid size.
func BuildField(width, height int, window Window, variant VariantKind) *Field {
	f := &Field{
		Width:   width,
		Height:  height,
		Window:  window,
		Variant: variant,
	}
	if width <= 0 || height <= 0 {
		return f
	}

	xStep := (window.XMax - window.XMin) / float64(width)
	yStep := (window.YMax - window.YMin) / float64(height)

	f.samples = make([]Complex, width*height)
	for j := 0; j < height; j++ {
		im := window.YMin + float64(j)*yStep
		row := j * width
		for i := 0; i < width; i++ {
			f.samples[row+i] = Complex{
				Re: window.XMin + float64(i)*xStep,
				Im: im,
			}
		}
	}
	return f
}

// At returns the sample for pixel (i, j). The caller is responsible for bounds.
func (f *Field) At(i, j int) Complex {
	return f.samples[j*f.Width+i]
}

// Len returns the number of samples in the field.
func (f *Field) Len() int {
	return len(f.samples)
}

// matches reports whether the field was generated from the given window and
// variant, i.e. whether it can be reused as-is.
func (f *Field) matches(window Window, variant VariantKind) bool {
	return f != nil && f.Window == window && f.Variant == variant
}
