package fractal

import (
	"fmt"
	"runtime"
	"sync"
)

// Documented default configuration, restored by a reset patch.
const (
	DefaultMaxIterations = 400
	DefaultEscapeRadius  = 20.0
)

// DefaultWindow is the plane window of the default configuration.
var DefaultWindow = Window{XMin: -2.5, XMax: 2.5, YMin: -2.5, YMax: 2.5}

// minEscapeRadius is the floor below which the continuous coloring formula
// (log of log of the escaped modulus) stops being defined. Radii in
// (0, minEscapeRadius) are clamped up at update time.
const minEscapeRadius = 2.0

// bufferAlpha is the fixed alpha channel written for every pixel, on the
// 0–255 scale the export layer expects.
const bufferAlpha = 250.0

// Config is the immutable render configuration. ApplyUpdate constructs a new
// Config from the old one plus a patch; nothing mutates a Config in place.
type Config struct {
	MaxIterations  int     `json:"max_iterations"`
	EscapeRadius   float64 `json:"escape_radius"`
	EscapeColoring bool    `json:"escape_coloring"`
	Variant        Variant `json:"variant"`
	BaseColor      HSB     `json:"base_color"`
	Window         Window  `json:"plane_window"`
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		MaxIterations:  DefaultMaxIterations,
		EscapeRadius:   DefaultEscapeRadius,
		EscapeColoring: false,
		Variant:        Variant{Kind: VariantStandard},
		BaseColor:      HSB{},
		Window:         DefaultWindow,
	}
}

// Patch is a partial configuration update. Nil fields are left untouched;
// Reset discards the current configuration first and any other fields in the
// same patch are then merged over the defaults.
type Patch struct {
	Reset             bool         `json:"reset,omitempty"`
	MaxIterations     *int         `json:"max_iterations,omitempty"`
	EscapeRadius      *float64     `json:"escape_radius,omitempty"`
	EscapeColoring    *bool        `json:"escape_coloring,omitempty"`
	Variant           *VariantKind `json:"variant,omitempty"`
	ParameterConstant *Complex     `json:"parameter_constant,omitempty"`
	Window            *Window      `json:"plane_window,omitempty"`
	BaseColor         *HSB         `json:"base_color,omitempty"`
}

// Buffer is a completed render: one HSBA quadruple per pixel in row-major
// order (outer loop rows, inner loop columns), matching the field layout.
type Buffer struct {
	Width  int
	Height int
	Pix    []HSBA
}

// At returns the pixel at (i, j).
func (b *Buffer) At(i, j int) HSBA {
	return b.Pix[j*b.Width+i]
}

// Renderer owns the current configuration, the sampled field derived from it,
// and drives full-frame renders.
//
// A Renderer is a single-writer object: callers must not invoke ApplyUpdate
// while a Render is in flight. Render itself parallelizes internally over
// disjoint row bands, which needs no locking.
type Renderer struct {
	width  int
	height int
	cfg    Config
	field  *Field
}

// NewRenderer creates a renderer for a fixed width × height pixel grid with
// the default configuration. The grid size is a construction parameter; create
// a new Renderer to change it.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{width: width, height: height, cfg: DefaultConfig()}
	r.field = BuildField(width, height, r.cfg.Window, r.cfg.Variant.Kind)
	return r
}

// NewRendererWith creates a renderer for a width × height grid starting from
// an existing configuration instead of the defaults. Used to re-grid (resize,
// supersample) without losing configuration state; cfg is assumed to have
// passed through ApplyUpdate validation already.
func NewRendererWith(width, height int, cfg Config) *Renderer {
	r := &Renderer{width: width, height: height, cfg: cfg}
	r.field = BuildField(width, height, cfg.Window, cfg.Variant.Kind)
	return r
}

// Config returns the current configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Size returns the pixel grid dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Field returns the current sampled field. Exposed for staleness tests and
// diagnostics; callers must not retain it across updates.
func (r *Renderer) Field() *Field {
	return r.field
}

// ApplyUpdate merges patch into the current configuration.
//
// With Reset set, the configuration first reverts to DefaultConfig and the
// remaining patch fields are merged over it. The patch is validated before
// anything is applied: MaxIterations and EscapeRadius must be positive, and a
// radius below 2 is clamped to 2 so continuous coloring stays defined. On
// error the renderer is left exactly as it was.
//
// The sampled field is rebuilt only when the resulting window or variant kind
// differs from the field's generating parameters, so color- or
// iteration-only patches skip the O(width·height) interpolation pass.
func (r *Renderer) ApplyUpdate(patch Patch) error {
	if patch.MaxIterations != nil && *patch.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", *patch.MaxIterations)
	}
	if patch.EscapeRadius != nil && *patch.EscapeRadius <= 0 {
		return fmt.Errorf("escape radius must be positive, got %g", *patch.EscapeRadius)
	}

	next := r.cfg
	if patch.Reset {
		next = DefaultConfig()
	}
	if patch.MaxIterations != nil {
		next.MaxIterations = *patch.MaxIterations
	}
	if patch.EscapeRadius != nil {
		next.EscapeRadius = *patch.EscapeRadius
		if next.EscapeRadius < minEscapeRadius {
			next.EscapeRadius = minEscapeRadius
		}
	}
	if patch.EscapeColoring != nil {
		next.EscapeColoring = *patch.EscapeColoring
	}
	if patch.Variant != nil {
		next.Variant.Kind = *patch.Variant
	}
	if patch.ParameterConstant != nil {
		next.Variant.Constant = *patch.ParameterConstant
	}
	if patch.Window != nil {
		next.Window = *patch.Window
	}
	if patch.BaseColor != nil {
		next.BaseColor = *patch.BaseColor
	}

	r.cfg = next
	if !r.field.matches(next.Window, next.Variant.Kind) {
		r.field = BuildField(r.width, r.height, next.Window, next.Variant.Kind)
	}
	return nil
}

// Render computes a complete frame from the current field and configuration.
//
// Every pixel is evaluated and color-mapped; the buffer is fully regenerated
// on each call, never patched incrementally. The sweep is split into static
// row bands, one per worker, each writing a disjoint slice of the buffer; the
// call returns after all bands join. Output is deterministic: repeated calls
// without an intervening update produce identical buffers.
func (r *Renderer) Render() *Buffer {
	buf := &Buffer{
		Width:  r.width,
		Height: r.height,
		Pix:    make([]HSBA, r.field.Len()),
	}
	if r.field.Len() == 0 {
		return buf
	}

	cfg := r.cfg
	workers := runtime.GOMAXPROCS(0)
	if workers > r.height {
		workers = r.height
	}

	band := (r.height + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		j0 := w * band
		j1 := j0 + band
		if j1 > r.height {
			j1 = r.height
		}
		wg.Add(1)
		go func(j0, j1 int) {
			defer wg.Done()
			r.renderRows(buf, cfg, j0, j1)
		}(j0, j1)
	}
	wg.Wait()
	return buf
}

// renderRows fills buffer rows [j0, j1). Each worker owns a disjoint range.
func (r *Renderer) renderRows(buf *Buffer, cfg Config, j0, j1 int) {
	for j := j0; j < j1; j++ {
		row := j * r.width
		for i := 0; i < r.width; i++ {
			res := Evaluate(r.field.At(i, j), cfg)
			hsb := NormalizeHSB(cfg.BaseColor, ColorValue(res, cfg))
			buf.Pix[row+i] = HSBA{
				Hue:        hsb.Hue,
				Saturation: hsb.Saturation,
				Brightness: hsb.Brightness,
				Alpha:      bufferAlpha,
			}
		}
	}
}
