// Package renderer drives the tile-granularity, worker-pool parallel
// render loop: a fixed number of persistent worker goroutines pull
// tile tasks off a buffered channel and write their results into
// disjoint pixel rectangles of a shared framebuffer, joined by a
// sync.WaitGroup.
package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"

	"github.com/wrenlight/arclight/pkg/camera"
	"github.com/wrenlight/arclight/pkg/core"
	"github.com/wrenlight/arclight/pkg/integrator"
)

// FrameBuffer is a width x height grid of averaged pixel colors.
type FrameBuffer struct {
	Width, Height int
	Pixels        [][]core.Color // row-major, [y][x]
}

// NewFrameBuffer allocates a zeroed framebuffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	pixels := make([][]core.Color, height)
	for y := range pixels {
		pixels[y] = make([]core.Color, width)
	}
	return &FrameBuffer{Width: width, Height: height, Pixels: pixels}
}

// Config controls the render pass.
type Config struct {
	SamplesPerPixel int
	TileSize        int
	NumWorkers      int
}

// DefaultConfig returns sane defaults: 32px tiles, one worker per CPU.
func DefaultConfig() Config {
	return Config{SamplesPerPixel: 100, TileSize: 32, NumWorkers: runtime.NumCPU()}
}

// tileTask is one rectangular region of the image to render, paired
// with the tile's own RNG that it should sample with.
type tileTask struct {
	bounds image.Rectangle
	random *rand.Rand
}

// Render runs a single-pass fixed-sample-count render of the scene
// seen through cam, using pt to evaluate radiance per sample, and
// returns the averaged framebuffer. Workers are persistent goroutines
// reading from a closed-when-done task channel; each tile task carries
// its own *rand.Rand so no locking is needed while sampling, and every
// tile writes to a disjoint pixel rectangle of fb so no locking is
// needed while writing either.
func Render(cam *camera.Camera, pt *integrator.PathTracer, width, height int, cfg Config, logger core.Logger) *FrameBuffer {
	fb := NewFrameBuffer(width, height)

	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = 32
	}

	tasks := buildTiles(width, height, tileSize)
	taskCh := make(chan tileTask, len(tasks))
	for _, t := range tasks {
		taskCh <- t
	}
	close(taskCh)

	var wg sync.WaitGroup
	var completed int64
	var mu sync.Mutex

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				renderTile(fb, cam, pt, task, cfg.SamplesPerPixel)

				mu.Lock()
				completed++
				n := completed
				mu.Unlock()
				if logger != nil && n%8 == 0 {
					remaining := height - height*int(n)/len(tasks)
					logger.Printf("Scanlines remaining: %d\n", remaining)
				}
			}
		}()
	}

	wg.Wait()
	if logger != nil {
		logger.Printf("Scanlines remaining: 0\n")
	}
	return fb
}

func buildTiles(width, height, tileSize int) []tileTask {
	var tasks []tileTask
	seed := int64(1)
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			x1, y1 := x+tileSize, y+tileSize
			if x1 > width {
				x1 = width
			}
			if y1 > height {
				y1 = height
			}
			bounds := image.Rect(x, y, x1, y1)
			tasks = append(tasks, tileTask{bounds: bounds, random: rand.New(rand.NewSource(seed))})
			seed++
		}
	}
	return tasks
}

func renderTile(fb *FrameBuffer, cam *camera.Camera, pt *integrator.PathTracer, task tileTask, spp int) {
	for j := task.bounds.Min.Y; j < task.bounds.Max.Y; j++ {
		for i := task.bounds.Min.X; i < task.bounds.Max.X; i++ {
			var accum core.Color
			for s := 0; s < spp; s++ {
				ray := cam.Ray(i, j, task.random)
				accum = accum.Add(pt.Li(ray, task.random))
			}
			fb.Pixels[j][i] = accum.Multiply(1.0 / float64(spp))
		}
	}
}
