package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync/atomic"
	"time"

	"github.com/mglsk/go-sphere-tracer/pkg/core"
	"github.com/mglsk/go-sphere-tracer/pkg/geometry"
	"github.com/mglsk/go-sphere-tracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene provides everything the renderer needs: a camera, the world
// geometry, and a background. Implementations are read-only during
// rendering and shared across all workers.
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetBackground() integrator.Background
}

// Renderer drives per-pixel, per-sample rendering of a scene into an
// RGBA image, distributing tiles across a worker pool.
type Renderer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	numWorkers int
	tileSize   int
	seed       int64
	pixelsDone atomic.Int64
	logger     core.Logger
}

// NewRenderer creates a renderer with default sampling configuration
// and a deterministic seed
func NewRenderer(scene Scene, width, height int, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:    scene,
		width:    width,
		height:   height,
		config:   DefaultSamplingConfig(),
		tileSize: DefaultTileSize,
		seed:     42,
		logger:   logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (r *Renderer) SetSamplingConfig(config SamplingConfig) {
	r.config = config
}

// SetSeed sets the base seed for per-tile random generators
func (r *Renderer) SetSeed(seed int64) {
	r.seed = seed
}

// SetNumWorkers sets the worker count (0 = CPU count)
func (r *Renderer) SetNumWorkers(n int) {
	r.numWorkers = n
}

// PixelsDone returns the number of pixels completed so far. It
// increases monotonically during Render and may be polled from another
// goroutine for progress reporting.
func (r *Renderer) PixelsDone() int64 {
	return r.pixelsDone.Load()
}

// TotalPixels returns the total number of pixels in the output image
func (r *Renderer) TotalPixels() int64 {
	return int64(r.width * r.height)
}

// Render renders the scene. Pixels are computed independently, tile by
// tile, with one seeded random generator per tile so results are
// deterministic for a fixed seed.
//
// Cancellation is checked at pixel boundaries; on cancellation Render
// returns the partially filled image together with ctx.Err().
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	r.pixelsDone.Store(0)

	pixelStats := make([][]PixelStats, r.height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, r.width)
	}

	tiles := NewTileGrid(r.width, r.height, r.tileSize, r.seed)
	pool := NewWorkerPool(r.numWorkers, len(tiles))

	r.logger.Printf("Rendering %dx%d, %d samples/pixel, %d tiles, %d workers\n",
		r.width, r.height, r.config.SamplesPerPixel, len(tiles), pool.NumWorkers())

	pool.Start(ctx, r.renderTile)
	for _, tile := range tiles {
		pool.Submit(TileTask{Tile: tile, PixelStats: pixelStats})
	}

	var renderErr error
	totalSamples := 0
	for range tiles {
		result := pool.Result()
		totalSamples += result.Samples
		if result.Err != nil && renderErr == nil {
			renderErr = result.Err
		}
	}
	pool.Stop()

	img := r.assembleImage(pixelStats)
	stats := RenderStats{
		TotalPixels:     r.width * r.height,
		TotalSamples:    totalSamples,
		SamplesPerPixel: r.config.SamplesPerPixel,
		Elapsed:         time.Since(startTime),
	}

	return img, stats, renderErr
}

// renderTile renders all pixels of one tile into the shared stats
// array. Tiles have disjoint bounds, so no synchronization is needed
// on the pixel data.
func (r *Renderer) renderTile(ctx context.Context, task TileTask) TileResult {
	camera := r.scene.GetCamera()
	world := r.scene.GetWorld()
	pt := integrator.NewPathTracer(r.config.MaxDepth, r.scene.GetBackground())
	sampler := core.NewRandomSampler(task.Tile.Random)

	bounds := task.Tile.Bounds
	samples := 0

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			// Cancellation is only checked between pixels to keep the
			// sampling loop contention-free
			select {
			case <-ctx.Done():
				return TileResult{TileID: task.Tile.ID, Samples: samples, Err: ctx.Err()}
			default:
			}

			ps := &task.PixelStats[j][i]
			for s := 0; s < r.config.SamplesPerPixel; s++ {
				// Jitter the sample position within the pixel footprint
				u := (float64(i) + sampler.Get1D()) / float64(r.width)
				v := (float64(j) + sampler.Get1D()) / float64(r.height)

				ray := camera.GetRay(u, v, sampler)
				ps.AddSample(pt.RayColor(ray, world, sampler))
				samples++
			}
			r.pixelsDone.Add(1)
		}
	}

	return TileResult{TileID: task.Tile.ID, Samples: samples}
}

// assembleImage converts accumulated pixel stats into an RGBA image.
// Row 0 of the stats array is the bottom of the scene, so rows are
// flipped into image space here.
func (r *Renderer) assembleImage(pixelStats [][]PixelStats) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			img.SetRGBA(x, r.height-1-y, vec3ToColor(pixelStats[y][x].Color()))
		}
	}
	return img
}

// vec3ToColor converts a linear color to 8-bit RGBA with gamma
// correction (component-wise square root), clamping, and 255.99
// scaling.
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	c := colorVec.Sqrt().Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255.99 * c.X),
		G: uint8(255.99 * c.Y),
		B: uint8(255.99 * c.Z),
		A: 255,
	}
}
