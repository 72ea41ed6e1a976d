package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"corepulse-assetgen/internal/assets"
	"corepulse-assetgen/internal/batch"
	"corepulse-assetgen/internal/config"
	"corepulse-assetgen/internal/walker"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: assets)")
	rate := flag.Int("rate", 0, "Sample rate in Hz (default: 44100)")
	texSize := flag.Int("texsize", 0, "Texture edge size in pixels (default: 256)")
	seed := flag.Int64("seed", 0, "Base random seed (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		SampleRate:  *rate,
		TextureSize: *texSize,
		Seed:        *seed,
		Workers:     *workers,
	})

	for _, dir := range []string{cfg.AudioDir, cfg.ModelDir, cfg.WalkerDir(), cfg.WeaponDir(), cfg.TextureDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
			os.Exit(1)
		}
	}

	jobs := buildJobs(cfg)

	fmt.Println("CorePulse Test Asset Generator")
	fmt.Printf("Assets: %d, Workers: %d\n", len(jobs), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(cfg.Workers, jobs)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Generated: %d/%d\n", success, len(jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, cfg.OutputDir, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// buildJobs assembles the full fixture job list: five sounds, five models,
// and the texture set. Each job gets its own derived seed so results do not
// depend on worker scheduling.
func buildJobs(cfg config.Config) []batch.Job {
	var jobs []batch.Job

	for i, def := range assets.Sounds {
		def := def
		jobSeed := cfg.Seed + int64(i)
		jobs = append(jobs, batch.Job{
			Name:    def.File,
			Kind:    "audio",
			Outputs: []string{relOut(cfg.OutputDir, cfg.AudioDir, def.File)},
			Run: func() error {
				return assets.WriteSound(cfg.AudioDir, def, cfg.SampleRate, jobSeed)
			},
		})
	}

	jobs = append(jobs, batch.Job{
		Name:    "cube",
		Kind:    "model",
		Outputs: relOuts(cfg.OutputDir, cfg.ModelDir, "cube.gltf", "cube.bin"),
		Run:     func() error { return assets.WriteCube(cfg.ModelDir) },
	})
	for _, c := range walker.Classes {
		c := c
		slug := walker.Slug(c.Name)
		jobs = append(jobs, batch.Job{
			Name:    slug,
			Kind:    "model",
			Outputs: relOuts(cfg.OutputDir, cfg.WalkerDir(), slug+".gltf", slug+".bin"),
			Run:     func() error { return assets.WriteWalker(cfg.WalkerDir(), c) },
		})
	}
	jobs = append(jobs, batch.Job{
		Name:    "laser_cannon",
		Kind:    "model",
		Outputs: relOuts(cfg.OutputDir, cfg.WeaponDir(), "laser_cannon.gltf", "laser_cannon.bin"),
		Run:     func() error { return assets.WriteWeapon(cfg.WeaponDir()) },
	})

	for i, def := range assets.Textures {
		def := def
		jobSeed := cfg.Seed + int64(100+i)
		jobs = append(jobs, batch.Job{
			Name:    def.Name,
			Kind:    "texture",
			Outputs: relOuts(cfg.OutputDir, cfg.TextureDir, assets.TextureFiles(def)...),
			Run: func() error {
				return assets.WriteTexture(cfg.TextureDir, def, cfg.TextureSize, jobSeed)
			},
		})
	}

	return jobs
}

func relOut(root, dir, file string) string {
	full := filepath.Join(dir, file)
	if rel, err := filepath.Rel(root, full); err == nil {
		return rel
	}
	return full
}

func relOuts(root, dir string, files ...string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = relOut(root, dir, f)
	}
	return out
}
