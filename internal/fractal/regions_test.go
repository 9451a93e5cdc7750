package fractal

import (
	"sort"
	"testing"
)

func TestRegionWindow(t *testing.T) {
	w, err := RegionWindow("seahorse-valley")
	if err != nil {
		t.Fatalf("RegionWindow: %v", err)
	}
	if w.XMin >= w.XMax || w.YMin >= w.YMax {
		t.Errorf("degenerate window: %+v", w)
	}

	if _, err := RegionWindow("atlantis"); err == nil {
		t.Error("unknown region did not error")
	}
}

func TestRegionNames(t *testing.T) {
	names := RegionNames()
	if !sort.StringsAreSorted(names) {
		t.Error("names not sorted")
	}

	found := false
	for _, n := range names {
		if n == "full" {
			found = true
		}
		if _, err := RegionWindow(n); err != nil {
			t.Errorf("listed region %q not resolvable: %v", n, err)
		}
	}
	if !found {
		t.Error(`"full" region missing`)
	}
}
