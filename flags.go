package main

import (
	"flag"
	"fmt"
	"os"
)

func parseFlags() options {
	opts := options{}

	flag.StringVar(&opts.sceneType, "scene", "default", "Scene type: 'default', 'random', or 'lights'")
	flag.IntVar(&opts.width, "width", 900, "Output image width in pixels")
	flag.IntVar(&opts.height, "height", 600, "Output image height in pixels")
	flag.IntVar(&opts.samples, "samples", 100, "Samples per pixel")
	flag.IntVar(&opts.maxDepth, "depth", 50, "Maximum ray bounce depth")
	flag.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = CPU count)")
	flag.Int64Var(&opts.seed, "seed", 42, "Random seed for deterministic renders")
	flag.StringVar(&opts.output, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere path tracer")
		fmt.Println("Usage: go-sphere-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Four-sphere scene with a hollow glass bubble")
		fmt.Println("  random  - Procedural cover scene with a grid of random small spheres")
		fmt.Println("  lights  - Emissive spheres against a black background")
		fmt.Println()
		fmt.Println("Output is saved to output/<scene_type>/render_<timestamp>.png unless -output is set.")
		os.Exit(0)
	}

	return opts
}
