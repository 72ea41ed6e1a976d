package texture

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// WriteWebP encodes img losslessly to path.
func WriteWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("texture: webp encode %s: %w", path, err)
	}
	return nil
}

// WriteTGA encodes img to path in the engine's native TGA format.
func WriteTGA(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	defer f.Close()
	if err := tga.Encode(f, img); err != nil {
		return fmt.Errorf("texture: tga encode %s: %w", path, err)
	}
	return nil
}
