package server

import (
	"encoding/json"
	"testing"

	"github.com/ironsheep/fractal-tools-mcp/internal/fractal"
	"github.com/ironsheep/fractal-tools-mcp/internal/render"
)

// callTool runs a tool through the full tools/call path and fails the test on
// protocol-level errors.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params, err := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}

	return s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Params: params})
}

func TestConfigure_MergeAndEcho(t *testing.T) {
	s := New()

	resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"max_iterations":  800,
		"escape_radius":   4.0,
		"escape_coloring": true,
		"base_color":      map[string]interface{}{"hue": 200, "saturation": 90, "brightness": 90},
	})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	cfg := s.renderer.Config()
	if cfg.MaxIterations != 800 || cfg.EscapeRadius != 4.0 || !cfg.EscapeColoring {
		t.Errorf("config not merged: %+v", cfg)
	}
	if cfg.BaseColor.Hue != 200 {
		t.Errorf("base color not merged: %+v", cfg.BaseColor)
	}
}

func TestConfigure_Variant(t *testing.T) {
	s := New()

	resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"variant":            "parameterized",
		"parameter_constant": map[string]interface{}{"re": -0.8, "im": 0.156},
	})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	cfg := s.renderer.Config()
	if cfg.Variant.Kind != fractal.VariantParameterized {
		t.Errorf("variant: got %v", cfg.Variant.Kind)
	}
	if cfg.Variant.Constant.Re != -0.8 || cfg.Variant.Constant.Im != 0.156 {
		t.Errorf("constant: got %+v", cfg.Variant.Constant)
	}
}

func TestConfigure_UnknownVariant(t *testing.T) {
	s := New()

	resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"variant": "cubic",
	})
	if resp.Error == nil {
		t.Fatal("unknown variant did not error")
	}
}

func TestConfigure_Region(t *testing.T) {
	s := New()

	resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"region": "seahorse-valley",
	})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	want, _ := fractal.RegionWindow("seahorse-valley")
	if got := s.renderer.Config().Window; got != want {
		t.Errorf("window: got %+v, want %+v", got, want)
	}
}

func TestConfigure_RegionAndWindowConflict(t *testing.T) {
	s := New()

	resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"region":       "seahorse-valley",
		"plane_window": map[string]interface{}{"x_min": -1, "x_max": 1, "y_min": -1, "y_max": 1},
	})
	if resp.Error == nil {
		t.Fatal("region+plane_window did not error")
	}
}

func TestConfigure_Reset(t *testing.T) {
	s := New()

	if resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"max_iterations": 99,
		"region":         "elephant-valley",
	}); resp.Error != nil {
		t.Fatalf("setup: %+v", resp.Error)
	}

	if resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"reset": true,
	}); resp.Error != nil {
		t.Fatalf("reset: %+v", resp.Error)
	}

	if got, want := s.renderer.Config(), fractal.DefaultConfig(); got != want {
		t.Errorf("after reset: got %+v, want %+v", got, want)
	}
}

func TestConfigure_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"zero iterations", map[string]interface{}{"max_iterations": 0}},
		{"negative radius", map[string]interface{}{"escape_radius": -1}},
		{"zero width", map[string]interface{}{"width": 0}},
		{"negative height", map[string]interface{}{"height": -4}},
		{"unknown region", map[string]interface{}{"region": "narnia"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			before := s.renderer.Config()

			resp := callTool(t, s, "fractal_configure", tt.args)
			if resp.Error == nil {
				t.Fatal("expected error, got nil")
			}
			if s.renderer.Config() != before {
				t.Error("failed configure mutated state")
			}
		})
	}
}

func TestConfigure_Regrid(t *testing.T) {
	s := New()

	if resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"max_iterations": 55,
	}); resp.Error != nil {
		t.Fatalf("setup: %+v", resp.Error)
	}

	if resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"width":  64,
		"height": 48,
	}); resp.Error != nil {
		t.Fatalf("regrid: %+v", resp.Error)
	}

	if s.width != 64 || s.height != 48 {
		t.Errorf("grid: got %dx%d, want 64x48", s.width, s.height)
	}
	// Configuration survives the re-grid.
	if got := s.renderer.Config().MaxIterations; got != 55 {
		t.Errorf("MaxIterations after regrid: got %d, want 55", got)
	}
}

func TestRenderTool(t *testing.T) {
	s := New()

	// Shrink the grid so the test renders quickly.
	if resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"width": 32, "height": 32, "max_iterations": 50,
	}); resp.Error != nil {
		t.Fatalf("setup: %+v", resp.Error)
	}

	result, err := s.executeTool("fractal_render", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	enc, ok := result.(*render.EncodeResult)
	if !ok {
		t.Fatalf("result type: %T", result)
	}
	if enc.Width != 32 || enc.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 32x32", enc.Width, enc.Height)
	}
	if enc.MimeType != "image/png" || enc.ImageBase64 == "" {
		t.Errorf("payload: mime=%s, empty=%v", enc.MimeType, enc.ImageBase64 == "")
	}
}

func TestRenderTool_Supersample(t *testing.T) {
	s := New()

	if resp := callTool(t, s, "fractal_configure", map[string]interface{}{
		"width": 16, "height": 16, "max_iterations": 30,
	}); resp.Error != nil {
		t.Fatalf("setup: %+v", resp.Error)
	}

	result, err := s.executeTool("fractal_render", json.RawMessage(`{"supersample": 2}`))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	enc := result.(*render.EncodeResult)
	// Supersampling renders at 2x but exports back at the configured grid.
	if enc.Width != 16 || enc.Height != 16 {
		t.Errorf("dimensions: got %dx%d, want 16x16", enc.Width, enc.Height)
	}
}

func TestRenderTool_SupersampleOutOfRange(t *testing.T) {
	s := New()

	if _, err := s.executeTool("fractal_render", json.RawMessage(`{"supersample": 99}`)); err == nil {
		t.Error("oversized supersample did not error")
	}
	if _, err := s.executeTool("fractal_render", json.RawMessage(`{"supersample": -1}`)); err == nil {
		t.Error("negative supersample did not error")
	}
}

func TestProbeTool(t *testing.T) {
	s := New()

	tests := []struct {
		name        string
		re, im      float64
		wantEscaped bool
	}{
		{"origin is interior", 0, 0, false},
		{"distant point escapes", 10, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.executeTool("fractal_probe", mustJSON(t, map[string]interface{}{
				"re": tt.re, "im": tt.im,
			}))
			if err != nil {
				t.Fatalf("probe: %v", err)
			}

			probe := result.(*probeResult)
			if probe.Escaped != tt.wantEscaped {
				t.Errorf("Escaped: got %v, want %v", probe.Escaped, tt.wantEscaped)
			}
			if tt.wantEscaped && probe.Iterations != 1 {
				t.Errorf("Iterations: got %d, want 1", probe.Iterations)
			}
			if !tt.wantEscaped && probe.Iterations != fractal.DefaultMaxIterations {
				t.Errorf("Iterations: got %d, want %d", probe.Iterations, fractal.DefaultMaxIterations)
			}
		})
	}
}

func TestListRegionsTool(t *testing.T) {
	s := New()

	result, err := s.executeTool("fractal_list_regions", nil)
	if err != nil {
		t.Fatalf("list regions: %v", err)
	}

	m := result.(map[string]interface{})
	entries := m["regions"].([]regionEntry)
	if len(entries) == 0 {
		t.Fatal("no regions listed")
	}
	for _, e := range entries {
		if e.Name == "" {
			t.Error("region with empty name")
		}
	}
}

func TestGetConfigTool(t *testing.T) {
	s := New()

	result, err := s.executeTool("fractal_get_config", nil)
	if err != nil {
		t.Fatalf("get config: %v", err)
	}

	cfg := result.(*configResult)
	if cfg.Width != defaultWidth || cfg.Height != defaultHeight {
		t.Errorf("grid: got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Config != fractal.DefaultConfig() {
		t.Errorf("config: got %+v", cfg.Config)
	}
}

func TestExecuteTool_Unknown(t *testing.T) {
	s := New()

	if _, err := s.executeTool("fractal_teleport", nil); err == nil {
		t.Error("unknown tool did not error")
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()

	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Params: json.RawMessage(`{bad json`)})
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("expected -32602, got %+v", resp.Error)
	}
}

func mustJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}
