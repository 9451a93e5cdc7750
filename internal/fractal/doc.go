// Package fractal implements the escape-time fractal core: complex arithmetic,
// plane sampling, the iteration loop, continuous coloring, and the renderer that
// ties them together.
//
// # Pipeline
//
// A Renderer owns the current configuration, a sampled field (one complex value
// per pixel), and produces an HSBA buffer on demand:
//
//	r := fractal.NewRenderer(800, 600)
//	iters := 1000
//	if err := r.ApplyUpdate(fractal.Patch{MaxIterations: &iters}); err != nil {
//	    log.Fatal(err)
//	}
//	buf := r.Render()
//
// ApplyUpdate merges a patch into the configuration (or resets it to the
// documented defaults) and rebuilds the sampled field only when the plane window
// or the fractal variant changed. Render sweeps the field row-major, running the
// evaluator and color mapper per pixel, and returns a complete buffer; it is
// deterministic, so two renders without an intervening update are identical.
//
// # Coordinate System
//
// Pixel (0,0) is the top-left sample. Pixel coordinate i maps linearly onto
// [XMin, XMax) of the plane window and j onto [YMin, YMax); i=0 lands exactly on
// XMin and j=0 exactly on YMin.
//
// # Thread Safety
//
// Evaluate and the color mapping functions are pure and safe for concurrent use.
// A Renderer is a single-writer object: callers must serialize ApplyUpdate and
// Render. Internally Render fans the pixel sweep out over row bands, which is
// safe because bands are disjoint and the evaluator shares no state.
//
// # Configuration Preconditions
//
// MaxIterations and EscapeRadius must be positive. The continuous coloring
// formula takes log(log|Z|) of escaped points, so the escape radius must keep
// escaped moduli above 1; ApplyUpdate clamps radii below 2 up to 2 to keep the
// formula defined.
package fractal
