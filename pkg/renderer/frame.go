package renderer

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/pvogt/rayfield/pkg/camera"
	"github.com/pvogt/rayfield/pkg/core"
)

// Tracer computes the color seen along a single camera ray at a point in
// time. Both rendering pipelines implement it: trace.Scene analytically,
// march.Shader by sphere tracing.
type Tracer interface {
	Trace(ray core.Ray, elapsed float64) core.Vec3
}

// FrameDriver orchestrates one frame: it generates a camera ray through
// every pixel, runs the tracer, and writes the shaded colors into a
// host-provided image. Pixels are independent, so the work is dispatched
// over thread groups with no shared mutable state inside a frame.
type FrameDriver struct {
	camera    *camera.Camera
	tracer    Tracer
	groupSize int
	workers   int // 0 = one per CPU
	logger    core.Logger
}

// NewFrameDriver creates a frame driver
func NewFrameDriver(cam *camera.Camera, tracer Tracer, groupSize, workers int, logger core.Logger) *FrameDriver {
	if groupSize <= 0 {
		groupSize = 8
	}
	if logger == nil {
		logger = core.NewStdoutLogger()
	}
	return &FrameDriver{
		camera:    cam,
		tracer:    tracer,
		groupSize: groupSize,
		workers:   workers,
		logger:    logger,
	}
}

// SetCamera replaces the camera matrices for the next frame. Must not be
// called while a frame is rendering.
func (fd *FrameDriver) SetCamera(cam *camera.Camera) {
	fd.camera = cam
}

// RenderFrame renders the scene at the given elapsed time into img. The
// image is owned by the host; the driver only writes pixel colors.
func (fd *FrameDriver) RenderFrame(img *image.RGBA, elapsed float64) RenderStats {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	groups := GroupGrid(width, height, fd.groupSize)
	start := time.Now()

	workers := Dispatch(groups, fd.workers, func(g image.Rectangle) {
		for y := g.Min.Y; y < g.Max.Y; y++ {
			for x := g.Min.X; x < g.Max.X; x++ {
				ray := fd.camera.RayForPixel(x, y, width, height)
				colorVec := fd.tracer.Trace(ray, elapsed)
				img.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y, vec3ToColor(colorVec))
			}
		}
	})

	return RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: width * height,
		GroupCount:  len(groups),
		Workers:     workers,
		Elapsed:     time.Since(start),
	}
}

// vec3ToColor converts a color vector to 8-bit RGBA with clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// FrameResult contains one completed frame of an animation
type FrameResult struct {
	FrameNumber int // 1-based
	Elapsed     float64
	Image       *image.RGBA
	Stats       RenderStats
	IsLast      bool
}

// RenderAnimation renders frameCount frames at a fixed timestep with
// channel-based communication. Each frame gets a fresh image; frames either
// complete and are delivered, or the whole run stops on cancellation.
// If cameraFor is non-nil it supplies the camera matrices for each frame's
// elapsed time before dispatch.
func (fd *FrameDriver) RenderAnimation(ctx context.Context, width, height, frameCount int, timeStep float64, cameraFor func(elapsed float64) *camera.Camera) (<-chan FrameResult, <-chan error) {
	frameChan := make(chan FrameResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(frameChan)
		defer close(errChan)

		fd.logger.Printf("Rendering %d frames at %dx%d...\n", frameCount, width, height)

		for frame := 1; frame <= frameCount; frame++ {
			select {
			case <-ctx.Done():
				fd.logger.Printf("Rendering cancelled before frame %d\n", frame)
				errChan <- ctx.Err()
				return
			default:
			}

			elapsed := float64(frame-1) * timeStep
			if cameraFor != nil {
				fd.SetCamera(cameraFor(elapsed))
			}

			img := image.NewRGBA(image.Rect(0, 0, width, height))
			stats := fd.RenderFrame(img, elapsed)

			fd.logger.Printf("Frame %d/%d rendered in %v (%d groups, %d workers)\n",
				frame, frameCount, stats.Elapsed, stats.GroupCount, stats.Workers)

			result := FrameResult{
				FrameNumber: frame,
				Elapsed:     elapsed,
				Image:       img,
				Stats:       stats,
				IsLast:      frame == frameCount,
			}

			select {
			case frameChan <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return frameChan, errChan
}
