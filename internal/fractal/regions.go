package fractal

import (
	"fmt"
	"sort"
)

// Named plane windows over well-known landmarks of the Mandelbrot set. They
// give callers somewhere interesting to zoom without hand-entering bounds.
var regions = map[string]Window{
	// Seahorse Valley – dense filaments and repeating seahorse curls
	"seahorse-valley": {XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15},

	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant-valley": {XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02},

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	"spiral-minibrot": {XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325},

	// Triple Spiral – threefold symmetric spiral structure
	"triple-spiral": {XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980},

	// Valley of the Dragon – deep, highly detailed spiral filaments
	"valley-of-the-dragon": {XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850},

	// Full view – the default window over the whole set
	"full": DefaultWindow,
}

// RegionWindow returns the plane window for a named region.
func RegionWindow(name string) (Window, error) {
	w, ok := regions[name]
	if !ok {
		return Window{}, fmt.Errorf("unknown region: %s", name)
	}
	return w, nil
}

// RegionNames returns the available region names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
