package renderer

import (
	"image"
	"sync/atomic"
	"testing"
)

func TestGroupGrid_CoversEveryPixelOnce(t *testing.T) {
	tests := []struct {
		name                     string
		width, height, groupSize int
	}{
		{"exact multiple", 64, 32, 8},
		{"ragged right edge", 65, 32, 8},
		{"ragged both edges", 101, 53, 16},
		{"group larger than image", 5, 3, 8},
		{"single pixel", 1, 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupGrid(tt.width, tt.height, tt.groupSize)

			expectedGroups := ((tt.width + tt.groupSize - 1) / tt.groupSize) *
				((tt.height + tt.groupSize - 1) / tt.groupSize)
			if len(groups) != expectedGroups {
				t.Fatalf("Expected %d groups, got %d", expectedGroups, len(groups))
			}

			covered := make([]int, tt.width*tt.height)
			for _, g := range groups {
				if g.Min.X < 0 || g.Min.Y < 0 || g.Max.X > tt.width || g.Max.Y > tt.height {
					t.Fatalf("Group %v exceeds image bounds %dx%d", g, tt.width, tt.height)
				}
				for y := g.Min.Y; y < g.Max.Y; y++ {
					for x := g.Min.X; x < g.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}

			for i, count := range covered {
				if count != 1 {
					t.Fatalf("Pixel %d covered %d times", i, count)
				}
			}
		})
	}
}

func TestDispatch_RunsEveryGroup(t *testing.T) {
	groups := GroupGrid(100, 60, 16)

	var pixels int64
	workers := Dispatch(groups, 4, func(bounds image.Rectangle) {
		atomic.AddInt64(&pixels, int64(bounds.Dx()*bounds.Dy()))
	})

	if workers != 4 {
		t.Errorf("Expected 4 workers, got %d", workers)
	}
	if pixels != 100*60 {
		t.Errorf("Expected %d pixels rendered, got %d", 100*60, pixels)
	}
}

func TestDispatch_DefaultsWorkerCount(t *testing.T) {
	groups := GroupGrid(8, 8, 8)

	workers := Dispatch(groups, 0, func(bounds image.Rectangle) {})
	if workers < 1 {
		t.Errorf("Expected at least one worker, got %d", workers)
	}
}
