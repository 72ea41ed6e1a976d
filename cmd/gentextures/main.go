package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"corepulse-assetgen/internal/assets"
)

func main() {
	outputDir := flag.String("output", filepath.Join("assets", "textures"), "Output directory for texture files")
	size := flag.Int("size", 256, "Texture edge size in pixels")
	seed := flag.Int64("seed", 1, "Base random seed for panel shading")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outputDir, err)
		os.Exit(1)
	}

	fmt.Println("Generating placeholder textures for CorePulse...")

	for i, def := range assets.Textures {
		if err := assets.WriteTexture(*outputDir, def, *size, *seed+int64(i)); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", def.Name, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s (%dx%d, .webp + .tga + preview)\n",
			filepath.Join(*outputDir, def.Name), *size, *size)
	}

	fmt.Println("\nTexture files generated successfully!")
}
