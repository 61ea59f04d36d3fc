package renderer

import (
	"math/rand"
	"testing"
)

func TestBuildTilesCoversImageExactlyOnce(t *testing.T) {
	const width, height, tileSize = 70, 50, 32
	tasks := buildTiles(width, height, tileSize)

	covered := make([][]int, height)
	for y := range covered {
		covered[y] = make([]int, width)
	}
	for _, task := range tasks {
		for y := task.bounds.Min.Y; y < task.bounds.Max.Y; y++ {
			for x := task.bounds.Min.X; x < task.bounds.Max.X; x++ {
				covered[y][x]++
			}
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if covered[y][x] != 1 {
				t.Fatalf("pixel (%d, %d) covered %d times, want exactly 1", x, y, covered[y][x])
			}
		}
	}
}

func TestBuildTilesEachTaskGetsOwnRNG(t *testing.T) {
	tasks := buildTiles(64, 64, 32)
	if len(tasks) < 2 {
		t.Fatal("expected at least two tiles for this image/tile size")
	}
	seen := make(map[*rand.Rand]bool)
	for _, task := range tasks {
		if task.random == nil {
			t.Fatal("every tile task should carry its own RNG")
		}
		if seen[task.random] {
			t.Fatal("two tile tasks share the same *rand.Rand instance")
		}
		seen[task.random] = true
	}
}

func TestNewFrameBufferIsZeroedAndRightShape(t *testing.T) {
	fb := NewFrameBuffer(10, 5)
	if fb.Width != 10 || fb.Height != 5 {
		t.Fatalf("dimensions = (%d, %d), want (10, 5)", fb.Width, fb.Height)
	}
	if len(fb.Pixels) != 5 || len(fb.Pixels[0]) != 10 {
		t.Fatalf("Pixels shape = (%d, %d), want (5, 10)", len(fb.Pixels), len(fb.Pixels[0]))
	}
	if !fb.Pixels[0][0].IsBlack() {
		t.Error("a fresh framebuffer should start black")
	}
}
