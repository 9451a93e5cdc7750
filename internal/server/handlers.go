package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/fractal-tools-mcp/internal/fractal"
	"github.com/ironsheep/fractal-tools-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "fractal_configure", "fractal_render").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
// The renderer mutex is taken here so update/render pairs are serialized.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "fractal_configure":
		return s.handleConfigure(args)
	case "fractal_render":
		return s.handleRender(args)
	case "fractal_probe":
		return s.handleProbe(args)
	case "fractal_get_config":
		return s.handleGetConfig()
	case "fractal_list_regions":
		return s.handleListRegions()
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Configuration ===

// configureArgs embeds the core patch and adds the server-level fields: a
// named region shorthand for the plane window and the grid dimensions, which
// are a renderer construction parameter rather than configuration.
type configureArgs struct {
	fractal.Patch
	Region *string `json:"region"`
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
}

// configResult echoes the effective state after a configure call.
type configResult struct {
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Config fractal.Config `json:"config"`
}

func (s *Server) handleConfigure(args json.RawMessage) (interface{}, error) {
	var a configureArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	patch := a.Patch
	if a.Region != nil {
		if patch.Window != nil {
			return nil, fmt.Errorf("region and plane_window are mutually exclusive")
		}
		w, err := fractal.RegionWindow(*a.Region)
		if err != nil {
			return nil, err
		}
		patch.Window = &w
	}

	// Validate the grid change before touching anything so a failed call
	// leaves no partial state behind.
	width, height := s.width, s.height
	if a.Width != nil {
		width = *a.Width
	}
	if a.Height != nil {
		height = *a.Height
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}

	if err := s.renderer.ApplyUpdate(patch); err != nil {
		return nil, err
	}

	if width != s.width || height != s.height {
		s.width, s.height = width, height
		s.renderer = fractal.NewRendererWith(width, height, s.renderer.Config())
	}

	return &configResult{Width: s.width, Height: s.height, Config: s.renderer.Config()}, nil
}

// === Rendering ===

type renderArgs struct {
	Supersample int     `json:"supersample"`
	Gamma       float64 `json:"gamma"`
}

func (s *Server) handleRender(args json.RawMessage) (interface{}, error) {
	a := renderArgs{Supersample: 1, Gamma: 1.0}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}
	if a.Supersample < 1 || a.Supersample > 8 {
		return nil, fmt.Errorf("supersample must be in [1, 8], got %d", a.Supersample)
	}

	r := s.renderer
	opts := render.Options{Gamma: a.Gamma}
	if a.Supersample > 1 {
		// Render on a finer grid with the same configuration and let the
		// export layer fold it back down.
		r = fractal.NewRendererWith(s.width*a.Supersample, s.height*a.Supersample, s.renderer.Config())
		opts.Downsample = a.Supersample
	}

	return render.Encode(r.Render(), opts)
}

// === Inspection ===

type probeArgs struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// probeResult is the escape data for a single point.
type probeResult struct {
	Point      fractal.Complex `json:"point"`
	Iterations int             `json:"iterations"`
	Escaped    bool            `json:"escaped"`
	FinalZ     fractal.Complex `json:"final_z"`
	ColorValue float64         `json:"color_value"`
	Color      fractal.HSB     `json:"color"`
}

func (s *Server) handleProbe(args json.RawMessage) (interface{}, error) {
	var a probeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	cfg := s.renderer.Config()
	sample := fractal.Complex{Re: a.Re, Im: a.Im}
	res := fractal.Evaluate(sample, cfg)
	cv := fractal.ColorValue(res, cfg)

	return &probeResult{
		Point:      sample,
		Iterations: res.Iterations,
		Escaped:    res.Escaped,
		FinalZ:     res.FinalZ,
		ColorValue: cv,
		Color:      fractal.NormalizeHSB(cfg.BaseColor, cv),
	}, nil
}

func (s *Server) handleGetConfig() (interface{}, error) {
	return &configResult{Width: s.width, Height: s.height, Config: s.renderer.Config()}, nil
}

// regionEntry pairs a region name with its plane window.
type regionEntry struct {
	Name   string         `json:"name"`
	Window fractal.Window `json:"window"`
}

func (s *Server) handleListRegions() (interface{}, error) {
	names := fractal.RegionNames()
	entries := make([]regionEntry, 0, len(names))
	for _, name := range names {
		w, err := fractal.RegionWindow(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, regionEntry{Name: name, Window: w})
	}
	return map[string]interface{}{"regions": entries}, nil
}
