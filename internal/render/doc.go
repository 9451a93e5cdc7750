// Package render turns the abstract HSBA buffers produced by the fractal core
// into concrete images and wire-friendly encodings.
//
// The core deliberately knows nothing about color spaces or file formats; it
// emits hue/saturation/brightness/alpha quadruples per pixel. This package is
// the collaborator that blits: it converts those channels to RGB via
// go-colorful, assembles an image.NRGBA, optionally downsamples (for
// supersampled renders) and gamma-adjusts, and encodes to PNG/base64 for the
// tool surface.
//
// # Channel Interpretation
//
// Hue is degrees on the color wheel, saturation and brightness are percentages,
// alpha is on the 0–255 scale. The core's wrap rules can legally produce
// slightly out-of-range channels (negative sums pass through unwrapped); this
// layer clamps into displayable range at the boundary rather than distorting
// the buffer contract upstream.
//
// # Error Handling
//
// A buffer whose pixel count disagrees with its declared dimensions is
// rejected outright; no partially converted image is ever produced.
package render
