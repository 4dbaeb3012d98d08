package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/go-render/whitted-raytracer/pkg/envmap"
	"github.com/go-render/whitted-raytracer/pkg/integrator"
	"github.com/go-render/whitted-raytracer/pkg/renderer"
	"github.com/go-render/whitted-raytracer/pkg/scene"
)

func main() {
	// A .env file is optional; flags and built-in defaults cover
	// everything it can set.
	_ = godotenv.Load()

	sceneName := flag.String("scene", "default", "Scene: 'default', 'minimal', or a path to a .json scene file")
	width := flag.Int("width", 1024, "Output width in pixels")
	height := flag.Int("height", 768, "Output height in pixels")
	fov := flag.Float64("fov", 90, "Vertical field of view in degrees")
	depth := flag.Int("depth", integrator.DefaultMaxDepth, "Maximum recursion depth for reflection and refraction")
	workers := flag.Int("workers", envInt("WHITTED_WORKERS", 0), "Parallel render workers (0 = CPU count)")
	envMap := flag.String("envmap", "", "Equirectangular environment image used as the background")
	output := flag.String("output", envString("WHITTED_OUTPUT", filepath.Join("output", "render.png")), "Output image file (.png or .ppm)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: whitted-raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default      - Four spheres over a checkerboard floor")
		fmt.Println("  minimal      - Single diffuse sphere under one light")
		fmt.Println("  <path>.json  - Scene description file")
		return
	}

	var opts []scene.Option
	if *envMap != "" {
		env, err := envmap.Open(*envMap)
		if err != nil {
			fmt.Printf("Error loading environment map: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, scene.WithEnvironment(env))
	}

	sc, err := createScene(*sceneName, opts...)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.DefaultConfig()
	config.Width = *width
	config.Height = *height
	config.FOV = *fov * math.Pi / 180
	config.Workers = *workers

	logger := renderer.NewDefaultLogger()
	r, err := renderer.New(integrator.NewWhitted(sc, *depth), config, logger)
	if err != nil {
		fmt.Printf("Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	fb, stats := r.Render()
	logger.Printf("Rendered %d pixels in %d bands with %d workers in %v\n",
		stats.TotalPixels, stats.Bands, stats.Workers, stats.Elapsed)

	if err := writeImage(fb, *output); err != nil {
		fmt.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Render saved as %s\n", *output)
}

// createScene builds the scene selected on the command line. Names ending
// in .json are loaded as scene description files.
func createScene(name string, opts ...scene.Option) (*scene.Scene, error) {
	switch {
	case name == "default":
		return scene.NewDefaultScene(opts...)
	case name == "minimal":
		return scene.NewMinimalScene(opts...)
	case strings.HasSuffix(name, ".json"):
		return scene.LoadFile(name, opts...)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// writeImage saves the framebuffer to path, picking the format from the
// extension: .ppm writes binary PPM, anything else PNG.
func writeImage(fb *renderer.Framebuffer, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return fb.WritePPM(file)
	}
	return png.Encode(file, fb.Image())
}

// envString returns the environment value for key, or fallback if unset.
func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// envInt returns the integer environment value for key, or fallback if
// unset or not a number.
func envInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
