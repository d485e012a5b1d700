package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pvogt/rayfield/pkg/camera"
	"github.com/pvogt/rayfield/pkg/core"
	"github.com/pvogt/rayfield/pkg/renderer"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML render configuration")
	pipeline := flag.String("pipeline", "", "Pipeline: 'trace' or 'march' (overrides config)")
	width := flag.Int("width", 0, "Output width in pixels (overrides config)")
	height := flag.Int("height", 0, "Output height in pixels (overrides config)")
	frames := flag.Int("frames", 0, "Number of frames to render (overrides config)")
	seed := flag.Int64("seed", 0, "Scene generation seed (overrides config)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Rayfield demo renderer")
		fmt.Println("Usage: rayfield [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available pipelines:")
		fmt.Println("  trace - analytic ray tracing over generated spheres and a ground plane")
		fmt.Println("  march - sphere tracing over a signed-distance-field scene")
		fmt.Println()
		fmt.Println("Output will be saved to output/<pipeline>/frame_<number>.png")
		return
	}

	cfg := renderer.DefaultConfig()
	if *configPath != "" {
		loaded, err := renderer.LoadConfig(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Apply command line overrides
	if *pipeline != "" {
		cfg.Pipeline = *pipeline
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *frames > 0 {
		cfg.Frames = *frames
	}
	if *seed != 0 {
		cfg.Scene.Seed = *seed
	}
	cfg.Clamp()

	tracer, err := cfg.NewTracer()
	if err != nil {
		fmt.Printf("Error building pipeline: %v\n", err)
		os.Exit(1)
	}

	// Create output directory for this pipeline
	outputDir := filepath.Join("output", cfg.Pipeline)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %d frame(s) with the %s pipeline...\n", cfg.Frames, cfg.Pipeline)

	aspect := float64(cfg.Width) / float64(cfg.Height)
	rig := camera.NewOrbitRig(core.NewVec3(0, 1, 0), 14, 4.5, 45, aspect)

	driver := renderer.NewFrameDriver(rig.CameraAt(0), tracer,
		cfg.ResolvedGroupSize(), cfg.Workers, core.NewStdoutLogger())

	frameChan, errChan := driver.RenderAnimation(context.Background(),
		cfg.Width, cfg.Height, cfg.Frames, cfg.TimeStep, rig.CameraAt)

	for frame := range frameChan {
		filename := filepath.Join(outputDir, fmt.Sprintf("frame_%04d.png", frame.FrameNumber))
		if err := writePNG(filename, frame); err != nil {
			fmt.Printf("Error saving frame %d: %v\n", frame.FrameNumber, err)
			os.Exit(1)
		}
	}

	if err := <-errChan; err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Frames saved to %s\n", outputDir)
}

func writePNG(filename string, frame renderer.FrameResult) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, frame.Image)
}
