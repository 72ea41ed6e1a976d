package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"corepulse-assetgen/internal/assets"
	"corepulse-assetgen/internal/walker"
)

func main() {
	outputDir := flag.String("output", filepath.Join("assets", "models"), "Output directory for glTF files")
	flag.Parse()

	walkersDir := filepath.Join(*outputDir, "walkers")
	weaponsDir := filepath.Join(*outputDir, "weapons")
	for _, dir := range []string{*outputDir, walkersDir, weaponsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
			os.Exit(1)
		}
	}

	fmt.Println("Generating test glTF files for CorePulse...")

	if err := assets.WriteCube(*outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating cube: %v\n", err)
		os.Exit(1)
	}

	for _, c := range walker.Classes {
		fmt.Printf("Generating %s...\n", c.Name)
		if err := assets.WriteWalker(walkersDir, c); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", c.Name, err)
			os.Exit(1)
		}
	}

	if err := assets.WriteWeapon(weaponsDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating weapon: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nGenerated test glTF files:")
	fmt.Printf("  %s - Basic cube\n", filepath.Join(*outputDir, "cube.gltf"))
	for _, c := range walker.Classes {
		fmt.Printf("  %s - %s\n", filepath.Join(walkersDir, walker.Slug(c.Name)+".gltf"), c.Name)
	}
	fmt.Printf("  %s - Weapon model\n", filepath.Join(weaponsDir, "laser_cannon.gltf"))
	fmt.Println("\nAssets ready for CorePulse AssetManager testing!")
}
