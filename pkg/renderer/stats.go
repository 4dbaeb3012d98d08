package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Output width in pixels
	Height      int           // Output height in pixels
	TotalPixels int           // Total number of pixels rendered
	Bands       int           // Number of row bands distributed to workers
	Workers     int           // Number of parallel workers used
	Elapsed     time.Duration // Wall-clock render time
}
