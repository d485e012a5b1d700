package renderer

import "time"

// RenderStats contains statistics about a single rendered frame
type RenderStats struct {
	Width, Height int           // Output image dimensions
	TotalPixels   int           // Pixels written this frame
	GroupCount    int           // Thread groups dispatched
	Workers       int           // Parallel workers used
	Elapsed       time.Duration // Wall-clock render time
}
