package renderer

import (
	"image"
	"runtime"
	"sync"
)

// GroupGrid divides a width x height image into fixed-size thread groups
// using ceiling division, so partial edge groups are included. Edge groups
// are clipped to the image bounds rather than padded, which keeps every
// pixel inside exactly one group.
func GroupGrid(width, height, groupSize int) []image.Rectangle {
	groupsX := (width + groupSize - 1) / groupSize
	groupsY := (height + groupSize - 1) / groupSize

	groups := make([]image.Rectangle, 0, groupsX*groupsY)
	for gy := 0; gy < groupsY; gy++ {
		for gx := 0; gx < groupsX; gx++ {
			x0 := gx * groupSize
			y0 := gy * groupSize
			x1 := min(x0+groupSize, width)
			y1 := min(y0+groupSize, height)
			groups = append(groups, image.Rect(x0, y0, x1, y1))
		}
	}

	return groups
}

// Dispatch renders all groups across a pool of workers and blocks until the
// frame is complete. Groups never overlap, so workers write disjoint pixels
// and no locking is needed; the only shared state is the read-only scene and
// camera data captured by the render function.
func Dispatch(groups []image.Rectangle, numWorkers int, render func(bounds image.Rectangle)) int {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tasks := make(chan image.Rectangle, len(groups))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for bounds := range tasks {
				render(bounds)
			}
		}()
	}

	for _, g := range groups {
		tasks <- g
	}
	close(tasks)
	wg.Wait()

	return numWorkers
}
