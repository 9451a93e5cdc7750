// Command fractal-web serves a live fractal viewer over HTTP.
//
// The page at / shows the current render; /render.png returns the frame
// directly. A websocket at /ws accepts configuration patches as JSON (the same
// fields as the fractal_configure MCP tool) and answers each patch with a
// freshly rendered PNG frame, so the page can pan, zoom and recolor live.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/ironsheep/fractal-tools-mcp/internal/fractal"
	"github.com/ironsheep/fractal-tools-mcp/internal/render"
)

func main() {
	port := flag.Int("port", 8080, "http listen port")
	width := flag.Int("width", 800, "render width in pixels")
	height := flag.Int("height", 800, "render height in pixels")
	iters := flag.Int("iters", fractal.DefaultMaxIterations, "iteration budget per pixel")
	flag.Parse()

	v, err := newViewer(*width, *height, *iters)
	if err != nil {
		log.Fatalf("viewer: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", v.handleIndex)
	mux.HandleFunc("/render.png", v.handleFrame)
	mux.HandleFunc("/ws", v.handleWebsocket)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("http server: %v", err)
	}
}

// viewer owns the renderer; the mutex enforces the renderer's single-writer
// contract across http and websocket handlers.
type viewer struct {
	mu       sync.Mutex
	renderer *fractal.Renderer
}

func newViewer(width, height, iters int) (*viewer, error) {
	r := fractal.NewRenderer(width, height)
	if err := r.ApplyUpdate(fractal.Patch{MaxIterations: &iters}); err != nil {
		return nil, err
	}
	return &viewer{renderer: r}, nil
}

// frame applies an optional patch and renders the current configuration.
func (v *viewer) frame(patch *fractal.Patch) ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if patch != nil {
		if err := v.renderer.ApplyUpdate(*patch); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	buf := v.renderer.Render()
	data, err := render.PNG(buf, render.Options{})
	if err != nil {
		return nil, err
	}
	log.Printf("rendered %dx%d frame in %s", buf.Width, buf.Height, time.Since(start))
	return data, nil
}

func (v *viewer) handleFrame(w http.ResponseWriter, r *http.Request) {
	data, err := v.frame(nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(data); err != nil {
		log.Printf("write frame: %v", err)
	}
}

// handleWebsocket answers each JSON configuration patch with a PNG frame.
func (v *viewer) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	for {
		var patch fractal.Patch
		if err := readJSON(ctx, c, &patch); err != nil {
			log.Printf("websocket closed: %v", err)
			return
		}

		data, err := v.frame(&patch)
		if err != nil {
			// Bad patch; report and keep the connection alive.
			msg := fmt.Sprintf(`{"error":%q}`, err.Error())
			if werr := c.Write(ctx, websocket.MessageText, []byte(msg)); werr != nil {
				return
			}
			continue
		}

		if err := c.Write(ctx, websocket.MessageBinary, data); err != nil {
			log.Printf("write frame: %v", err)
			return
		}
	}
}

func readJSON(ctx context.Context, c *websocket.Conn, v interface{}) error {
	_, data, err := c.Read(ctx)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (v *viewer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}
