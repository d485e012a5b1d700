package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nfnt/resize"

	"github.com/pvogt/rayfield/pkg/camera"
	"github.com/pvogt/rayfield/pkg/core"
	"github.com/pvogt/rayfield/pkg/renderer"
)

// Server handles web requests for the demo renderer
type Server struct {
	port     int
	upgrader websocket.Upgrader
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port: port,
		upgrader: websocket.Upgrader{
			// The viewer page may be served from another origin during development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// StreamRequest is the first message a client sends on the stream socket
type StreamRequest struct {
	Pipeline     string  `json:"pipeline"`     // "trace" or "march"
	Width        int     `json:"width"`        // Output width
	Height       int     `json:"height"`       // Output height
	Frames       int     `json:"frames"`       // Number of frames to stream
	TimeStep     float64 `json:"timeStep"`     // Scene seconds per frame
	Seed         int64   `json:"seed"`         // Scene generation seed
	MaxSteps     int     `json:"maxSteps"`     // March iteration budget
	PreviewWidth int     `json:"previewWidth"` // Downscale frames to this width; 0 = full size
}

// FrameUpdate is a single streamed frame
type FrameUpdate struct {
	FrameNumber int    `json:"frameNumber"`
	TotalFrames int    `json:"totalFrames"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// StreamError reports a failure to the client before the socket closes
type StreamError struct {
	Error string `json:"error"`
}

// Start starts the web server
func (s *Server) Start() error {
	mux := s.Routes()
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// Routes builds the server's HTTP handlers
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/stream", s.handleStream)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleStream upgrades to a websocket, reads one render request, and
// streams rendered frames back until done or the client disconnects
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req StreamRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Printf("Invalid stream request: %v", err)
		return
	}

	cfg := configFor(req)
	tracer, err := cfg.NewTracer()
	if err != nil {
		conn.WriteJSON(StreamError{Error: err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reads after the request only serve to detect client disconnect
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	aspect := float64(cfg.Width) / float64(cfg.Height)
	rig := camera.NewOrbitRig(core.NewVec3(0, 1, 0), 14, 4.5, 45, aspect)

	driver := renderer.NewFrameDriver(rig.CameraAt(0), tracer,
		cfg.ResolvedGroupSize(), cfg.Workers, core.NewStdoutLogger())

	startTime := time.Now()
	frameChan, errChan := driver.RenderAnimation(ctx,
		cfg.Width, cfg.Height, cfg.Frames, cfg.TimeStep, rig.CameraAt)

	for frame := range frameChan {
		imageData, err := encodeFrame(frame.Image, req.PreviewWidth)
		if err != nil {
			log.Printf("Frame encode failed: %v", err)
			return
		}

		update := FrameUpdate{
			FrameNumber: frame.FrameNumber,
			TotalFrames: cfg.Frames,
			ImageData:   imageData,
			IsComplete:  frame.IsLast,
			ElapsedMs:   time.Since(startTime).Milliseconds(),
		}
		if err := conn.WriteJSON(update); err != nil {
			cancel()
			return
		}
	}

	if err := <-errChan; err != nil && err != context.Canceled {
		conn.WriteJSON(StreamError{Error: err.Error()})
	}
}

// configFor overlays a stream request onto the default configuration and
// clamps it to supported ranges
func configFor(req StreamRequest) renderer.Config {
	cfg := renderer.DefaultConfig()

	if req.Pipeline != "" {
		cfg.Pipeline = req.Pipeline
	}
	if req.Width > 0 {
		cfg.Width = req.Width
	}
	if req.Height > 0 {
		cfg.Height = req.Height
	}
	if req.Frames > 0 {
		cfg.Frames = req.Frames
	}
	if req.TimeStep > 0 {
		cfg.TimeStep = req.TimeStep
	}
	if req.Seed != 0 {
		cfg.Scene.Seed = req.Seed
	}
	if req.MaxSteps > 0 {
		cfg.March.MaxSteps = req.MaxSteps
	}

	cfg.Clamp()
	return cfg
}

// encodeFrame converts a frame to a base64 PNG, downscaled to previewWidth
// when it is set and smaller than the frame
func encodeFrame(img *image.RGBA, previewWidth int) (string, error) {
	var out image.Image = img
	if previewWidth > 0 && previewWidth < img.Bounds().Dx() {
		out = resize.Resize(uint(previewWidth), 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
