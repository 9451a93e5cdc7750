package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Configuration
		{
			Name:        "fractal_configure",
			Description: "Update the render configuration. Fields are merged into the current configuration; omitted fields keep their value. Set reset=true to restore documented defaults first. Unrecognized fields are ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"reset": map[string]interface{}{
						"type":        "boolean",
						"description": "Revert to defaults (400 iterations, escape radius 20, standard variant, full window) before applying the rest of the patch",
					},
					"max_iterations": map[string]interface{}{
						"type":        "integer",
						"description": "Iteration budget per pixel; must be positive",
					},
					"escape_radius": map[string]interface{}{
						"type":        "number",
						"description": "Orbit modulus at which a point counts as escaped; must be positive, values below 2 are clamped to 2",
					},
					"escape_coloring": map[string]interface{}{
						"type":        "boolean",
						"description": "Flat interior color for points that never escape (true) vs continuous coloring everywhere (false)",
					},
					"variant": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"standard", "parameterized"},
						"description": "standard = Mandelbrot (sample is the constant), parameterized = Julia-style (fixed constant)",
					},
					"parameter_constant": map[string]interface{}{
						"type":        "object",
						"description": "Fixed constant for the parameterized variant",
						"properties": map[string]interface{}{
							"re": map[string]interface{}{"type": "number"},
							"im": map[string]interface{}{"type": "number"},
						},
					},
					"plane_window": map[string]interface{}{
						"type":        "object",
						"description": "Rectangle of the complex plane to sample, in plane units (no UI scaling is applied)",
						"properties": map[string]interface{}{
							"x_min": map[string]interface{}{"type": "number"},
							"x_max": map[string]interface{}{"type": "number"},
							"y_min": map[string]interface{}{"type": "number"},
							"y_max": map[string]interface{}{"type": "number"},
						},
					},
					"region": map[string]interface{}{
						"type":        "string",
						"description": "Named landmark window (see fractal_list_regions); mutually exclusive with plane_window",
					},
					"base_color": map[string]interface{}{
						"type":        "object",
						"description": "Base HSB offset added to every pixel's color value",
						"properties": map[string]interface{}{
							"hue":        map[string]interface{}{"type": "number"},
							"saturation": map[string]interface{}{"type": "number"},
							"brightness": map[string]interface{}{"type": "number"},
						},
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Pixel grid width; changing it re-grids the renderer with the current configuration",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Pixel grid height",
					},
				},
			},
		},

		// Rendering
		{
			Name:        "fractal_render",
			Description: "Render a full frame with the current configuration and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"supersample": map[string]interface{}{
						"type":        "integer",
						"description": "Render at N times the grid size and downsample (Lanczos) for antialiasing. Default 1",
						"default":     1,
					},
					"gamma": map[string]interface{}{
						"type":        "number",
						"description": "Optional gamma adjustment applied to the exported image. Default 1.0",
						"default":     1.0,
					},
				},
			},
		},

		// Inspection
		{
			Name:        "fractal_probe",
			Description: "Evaluate a single point of the complex plane with the current configuration and return its escape data and color value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"re": map[string]interface{}{
						"type":        "number",
						"description": "Real component of the point",
					},
					"im": map[string]interface{}{
						"type":        "number",
						"description": "Imaginary component of the point",
					},
				},
				"required": []string{"re", "im"},
			},
		},
		{
			Name:        "fractal_get_config",
			Description: "Return the current render configuration and pixel grid size.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "fractal_list_regions",
			Description: "List the named plane-window presets (Mandelbrot landmarks) usable in fractal_configure.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
