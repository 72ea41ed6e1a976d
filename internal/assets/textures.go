package assets

import (
	"image/color"
	"math/rand"
	"path/filepath"

	"corepulse-assetgen/internal/texture"
	"corepulse-assetgen/internal/walker"
)

// TextureKind selects the synthesis pattern.
type TextureKind int

const (
	TextureChecker TextureKind = iota
	TextureHull
)

// TextureDef is one placeholder texture fixture. Each def is written as
// .webp and .tga plus a half-resolution _preview.webp.
type TextureDef struct {
	Name string
	Kind TextureKind
	Tint color.NRGBA // hull base color; unused for checker
}

// Textures is the stock set: a neutral UV checker plus one hull texture
// per walker class, tinted with the class color.
var Textures = buildTextureDefs()

func buildTextureDefs() []TextureDef {
	defs := []TextureDef{
		{Name: "uv_checker", Kind: TextureChecker},
	}
	for _, c := range walker.Classes {
		defs = append(defs, TextureDef{
			Name: "hull_" + walker.Slug(c.Name),
			Kind: TextureHull,
			Tint: colorFromFactor(c.Color),
		})
	}
	return defs
}

func colorFromFactor(f [4]float32) color.NRGBA {
	return color.NRGBA{
		R: uint8(f[0]*255 + 0.5),
		G: uint8(f[1]*255 + 0.5),
		B: uint8(f[2]*255 + 0.5),
		A: uint8(f[3]*255 + 0.5),
	}
}

// TextureFiles lists the files WriteTexture produces for def, relative
// to the output directory.
func TextureFiles(def TextureDef) []string {
	return []string{
		def.Name + ".webp",
		def.Name + ".tga",
		def.Name + "_preview.webp",
	}
}

// WriteTexture synthesizes def at size x size and writes all three output
// files under dir. The seed fixes panel shading so reruns are identical.
func WriteTexture(dir string, def TextureDef, size int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	img := texture.Checker(size, size/8,
		color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		color.NRGBA{R: 64, G: 64, B: 64, A: 255})
	if def.Kind == TextureHull {
		img = texture.HullPlate(size, size/8, def.Tint, rng)
	}

	if err := texture.WriteWebP(filepath.Join(dir, def.Name+".webp"), img); err != nil {
		return err
	}
	if err := texture.WriteTGA(filepath.Join(dir, def.Name+".tga"), img); err != nil {
		return err
	}
	return texture.WriteWebP(filepath.Join(dir, def.Name+"_preview.webp"), texture.Preview(img))
}
