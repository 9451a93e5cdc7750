// Package server implements the MCP (Model Context Protocol) server for the
// fractal renderer.
//
// This package provides a JSON-RPC 2.0 server that exposes escape-time fractal
// rendering through the MCP protocol, so Claude and other MCP-compatible
// clients can configure and render Mandelbrot and Julia images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Configuration:
//   - fractal_configure: Merge a configuration patch (iterations, escape
//     radius, variant, plane window or named region, base color, grid size),
//     or reset to documented defaults
//
// Rendering:
//   - fractal_render: Full-frame render, returned as base64 PNG; optional
//     supersampling and gamma adjustment
//
// Inspection:
//   - fractal_probe: Escape data and color value for one complex point
//   - fractal_get_config: Current configuration and grid size
//   - fractal_list_regions: Named plane-window presets
//
// # Renderer Ownership
//
// The server owns a single fractal.Renderer. Configure and render calls are
// serialized with a mutex: the renderer's contract is single-writer, and the
// tool surface is the single caller. Each render is a full, independent
// recompute; nothing is cached between frames except the sampled field the
// renderer keeps for unchanged windows.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Configuration precondition violations (non-positive iterations or radius,
// bad grid dimensions, unknown variant or region names) fail the call without
// touching renderer state; no partial frame is ever produced.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
