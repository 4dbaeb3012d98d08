package renderer

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/go-render/whitted-raytracer/pkg/core"
)

// Integrator computes the color seen along a ray cast at the given
// recursion depth. Primary rays start at depth 0.
type Integrator interface {
	RayColor(ray core.Ray, depth int) core.Color
}

// Config contains rendering configuration
type Config struct {
	Width    int     // Output width in pixels
	Height   int     // Output height in pixels
	FOV      float64 // Vertical field of view in radians
	Workers  int     // Parallel workers (0 = use CPU count)
	BandRows int     // Rows per work band (0 = default)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:    1024,
		Height:   768,
		FOV:      math.Pi / 2,
		Workers:  0,
		BandRows: 16,
	}
}

// Validate reports the first invalid configuration value.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FOV <= 0 || c.FOV >= math.Pi {
		return fmt.Errorf("fov must be in (0, pi) radians, got %v", c.FOV)
	}
	return nil
}

// band is a horizontal strip of rows rendered by a single worker. Bands
// are disjoint and cover the image, so workers never share pixels.
type band struct {
	yMin, yMax int
}

// Renderer drives the per-pixel loop: it builds a primary ray for each
// pixel, asks the integrator for its color, and stores the tone-mapped
// result in the framebuffer.
type Renderer struct {
	integrator Integrator
	config     Config
	camera     *Camera
	logger     core.Logger
}

// New creates a renderer. A nil logger is replaced by the default one.
func New(integrator Integrator, config Config, logger core.Logger) (*Renderer, error) {
	if integrator == nil {
		return nil, fmt.Errorf("integrator must not be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		integrator: integrator,
		config:     config,
		camera:     NewCamera(config.FOV, config.Width, config.Height),
		logger:     logger,
	}, nil
}

// Render traces every pixel once and returns the finished framebuffer.
// Rows are split into disjoint bands fanned out over a worker pool; each
// worker writes only its own bands, so no locking is needed and the
// output is identical for any worker count.
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()
	fb := NewFramebuffer(r.config.Width, r.config.Height)

	numWorkers := r.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bandRows := r.config.BandRows
	if bandRows <= 0 {
		bandRows = DefaultConfig().BandRows
	}

	numBands := (r.config.Height + bandRows - 1) / bandRows
	bands := make(chan band, numBands)
	for y := 0; y < r.config.Height; y += bandRows {
		yMax := y + bandRows
		if yMax > r.config.Height {
			yMax = r.config.Height
		}
		bands <- band{yMin: y, yMax: yMax}
	}
	close(bands)

	r.logger.Printf("Rendering %dx%d with %d workers...\n",
		r.config.Width, r.config.Height, numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range bands {
				r.renderBand(fb, b)
			}
		}()
	}
	wg.Wait()

	return fb, RenderStats{
		Width:       r.config.Width,
		Height:      r.config.Height,
		TotalPixels: r.config.Width * r.config.Height,
		Bands:       numBands,
		Workers:     numWorkers,
		Elapsed:     time.Since(start),
	}
}

// renderBand traces the band's pixels at depth 0 and stores tone-mapped
// colors; each pixel is written exactly once.
func (r *Renderer) renderBand(fb *Framebuffer, b band) {
	for y := b.yMin; y < b.yMax; y++ {
		for x := 0; x < r.config.Width; x++ {
			color := r.integrator.RayColor(r.camera.Ray(x, y), 0)
			fb.Set(x, y, color.ToneMapped())
		}
	}
}
