package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/mglsk/go-sphere-tracer/pkg/renderer"
	"github.com/mglsk/go-sphere-tracer/pkg/scene"
)

type options struct {
	sceneType string
	width     int
	height    int
	samples   int
	maxDepth  int
	workers   int
	seed      int64
	output    string
}

// createScene builds one of the named scenes with an aspect ratio
// matching the requested output size
func createScene(sceneType string, width, height int, seed int64) (*scene.Scene, error) {
	override := renderer.CameraConfig{AspectRatio: float64(width) / float64(height)}

	switch sceneType {
	case "default":
		return scene.NewDefaultScene(override), nil
	case "random":
		return scene.NewRandomScene(seed, override), nil
	case "lights":
		return scene.NewLightsScene(override), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q (available: default, random, lights)", sceneType)
	}
}

// reportProgress periodically prints completed pixels until done is
// closed. The renderer only increments a counter; all printing happens
// here, off the rendering hot path.
func reportProgress(r *renderer.Renderer, done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	total := r.TotalPixels()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			completed := r.PixelsDone()
			fmt.Printf("  %d/%d pixels (%.1f%%)\n", completed, total,
				100*float64(completed)/float64(total))
		}
	}
}

func run(opts options) error {
	selectedScene, err := createScene(opts.sceneType, opts.width, opts.height, opts.seed)
	if err != nil {
		return err
	}

	r := renderer.NewRenderer(selectedScene, opts.width, opts.height, renderer.NewDefaultLogger())
	r.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.maxDepth,
	})
	r.SetSeed(opts.seed)
	r.SetNumWorkers(opts.workers)

	// Ctrl+C cancels the render; the partial image is still written
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := make(chan struct{})
	go reportProgress(r, done)

	img, stats, renderErr := r.Render(ctx)
	close(done)

	if renderErr != nil {
		fmt.Printf("Render interrupted after %v: %v\n", stats.Elapsed, renderErr)
	} else {
		fmt.Printf("Render completed in %v (%d samples over %d pixels)\n",
			stats.Elapsed, stats.TotalSamples, stats.TotalPixels)
	}

	outputPath := opts.output
	if outputPath == "" {
		outputDir := filepath.Join("output", opts.sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	fmt.Printf("Render saved as %s\n", outputPath)
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
