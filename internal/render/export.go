package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/fractal-tools-mcp/internal/fractal"
)

// Options control post-processing applied during export.
type Options struct {
	// Downsample divides both output dimensions by this factor using Lanczos
	// resampling. Used for supersampled renders (render at n×, export at 1×).
	// Values below 2 mean no downsampling.
	Downsample int

	// Gamma applies a gamma adjustment to the final image. Zero (or 1.0)
	// leaves the image untouched.
	Gamma float64
}

// EncodeResult contains an exported frame as base64 PNG.
type EncodeResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Image converts an HSBA buffer into an NRGBA image.
//
// Each pixel's hue/saturation/brightness is clamped into displayable range and
// converted to RGB; alpha carries over directly. Returns an error when the
// buffer's pixel count does not match its declared dimensions.
func Image(buf *fractal.Buffer) (*image.NRGBA, error) {
	if len(buf.Pix) != buf.Width*buf.Height {
		return nil, fmt.Errorf("buffer has %d pixels, want %d (%dx%d)",
			len(buf.Pix), buf.Width*buf.Height, buf.Width, buf.Height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for j := 0; j < buf.Height; j++ {
		for i := 0; i < buf.Width; i++ {
			p := buf.At(i, j)
			c := colorful.Hsv(
				clampHue(p.Hue),
				clamp01(p.Saturation/100),
				clamp01(p.Brightness/100),
			)
			r, g, b := c.RGB255()
			off := img.PixOffset(i, j)
			img.Pix[off+0] = r
			img.Pix[off+1] = g
			img.Pix[off+2] = b
			img.Pix[off+3] = clampAlpha(p.Alpha)
		}
	}
	return img, nil
}

// PNG converts a buffer to PNG bytes, applying the export options.
func PNG(buf *fractal.Buffer, opts Options) ([]byte, error) {
	img, err := Image(buf)
	if err != nil {
		return nil, err
	}

	var out image.Image = img
	if opts.Downsample >= 2 {
		w := buf.Width / opts.Downsample
		h := buf.Height / opts.Downsample
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("downsample factor %d too large for %dx%d buffer",
				opts.Downsample, buf.Width, buf.Height)
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}
	if opts.Gamma > 0 && opts.Gamma != 1.0 {
		out = adjust.Gamma(out, opts.Gamma)
	}

	var b bytes.Buffer
	if err := png.Encode(&b, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return b.Bytes(), nil
}

// Encode converts a buffer to a base64 PNG result for the tool surface.
func Encode(buf *fractal.Buffer, opts Options) (*EncodeResult, error) {
	data, err := PNG(buf, opts)
	if err != nil {
		return nil, err
	}

	w, h := buf.Width, buf.Height
	if opts.Downsample >= 2 {
		w /= opts.Downsample
		h /= opts.Downsample
	}
	return &EncodeResult{
		Width:       w,
		Height:      h,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:    "image/png",
	}, nil
}

// clampHue folds a hue in degrees into [0, 360). Negative hues (legal in the
// buffer contract) land on their positive equivalent.
func clampHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
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

func clampAlpha(a float64) uint8 {
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return uint8(a)
}
