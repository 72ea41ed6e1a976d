package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"corepulse-assetgen/internal/assets"
)

func main() {
	outputDir := flag.String("output", filepath.Join("assets", "audio"), "Output directory for WAV files")
	rate := flag.Int("rate", 44100, "Sample rate in Hz")
	seed := flag.Int64("seed", 1, "Base random seed for noise layers")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outputDir, err)
		os.Exit(1)
	}

	fmt.Println("Generating test audio files for CorePulse...")

	for i, def := range assets.Sounds {
		if err := assets.WriteSound(*outputDir, def, *rate, *seed+int64(i)); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", def.File, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s (%.2fs, %.0fHz %s sound)\n",
			filepath.Join(*outputDir, def.File), def.Duration, def.Frequency, def.Kind)
	}

	fmt.Println("\nAudio files generated successfully!")
	fmt.Println("Files created:")
	for _, def := range assets.Sounds {
		fmt.Printf("  %s - %s\n", filepath.Join(*outputDir, def.File), def.Desc)
	}
}
